package model

import "errors"

// ErrValidation возвращается при некорректных или отсутствующих входных данных.
var (
	ErrValidation = errors.New("invalid input")
	// ErrNotFound возвращается, если товар, позиция корзины или сохранённая корзина не найдены.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock возвращается, если запрошенное количество превышает остаток товара.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart возвращается при попытке оформить покупку с пустой корзиной.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStorage возвращается при сбое БД внутри транзакционного шага; эффекты откатываются целиком.
	ErrStorage = errors.New("storage failure")
)
