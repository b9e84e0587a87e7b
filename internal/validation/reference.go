// Package validation содержит функции валидации входных данных.
package validation

// IsValidReference проверяет артикул товара: непустая строка
// только из латинских букв и цифр, например HT001.
func IsValidReference(reference string) bool {
	if reference == "" {
		return false
	}

	for i := 0; i < len(reference); i++ {
		ch := reference[i]
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		default:
			return false
		}
	}

	return true
}
