// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/mmeshcher/hardstore-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrCashierExists возвращается при попытке зарегистрировать кассира с занятым логином.
var (
	ErrCashierExists = errors.New("cashier already exists")
	// ErrCashierNotFound возвращается, если кассир не найден.
	ErrCashierNotFound = errors.New("cashier not found")
	// ErrCategoryExists возвращается при попытке создать категорию с занятым именем.
	ErrCategoryExists = errors.New("category already exists")
	// ErrReferenceExists возвращается при попытке создать товар с занятым артикулом.
	ErrReferenceExists = errors.New("product reference already exists")
	// ErrProductReferenced возвращается при удалении товара, на который ссылаются покупки.
	ErrProductReferenced = errors.New("product is referenced by purchases")
	// ErrCustomerReferenced возвращается при удалении покупателя, у которого есть покупки.
	ErrCustomerReferenced = errors.New("customer is referenced by purchases")
)

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// withRetry повторяет fn при ошибках сериализации и дедлоках.
// Остальные ошибки возвращаются сразу.
func (r *PostgresRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected) {
			return retry.RetryableError(err)
		}

		return err
	})
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateCashier создаёт новую учётную запись кассира.
func (r *PostgresRepository) CreateCashier(ctx context.Context, login string, passwordHash []byte) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (login, password_hash) VALUES ($1, $2) RETURNING id`,
		login, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrCashierExists, login)
		}
		return 0, fmt.Errorf("create cashier: %w", err)
	}
	return id, nil
}

// GetCashierByLogin возвращает кассира по логину.
func (r *PostgresRepository) GetCashierByLogin(ctx context.Context, login string) (*model.Cashier, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at FROM admins WHERE login = $1`,
		login,
	)

	var c model.Cashier
	err := row.Scan(&c.ID, &c.Login, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCashierNotFound
		}
		return nil, fmt.Errorf("get cashier: %w", err)
	}

	return &c, nil
}

// ListProducts возвращает товары каталога. Непустой search фильтрует
// по подстроке имени или артикула без учёта регистра.
func (r *PostgresRepository) ListProducts(ctx context.Context, search string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, name, description, price, quantity, min_quantity, category_id, created_at, updated_at
		 FROM products
		 WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR reference ILIKE '%' || $1 || '%'
		 ORDER BY name`,
		search,
	)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Reference, &p.Name, &p.Description, &p.PriceCents,
			&p.Quantity, &p.MinQuantity, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору.
func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, reference, name, description, price, quantity, min_quantity, category_id, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	)

	var p model.Product
	err := row.Scan(&p.ID, &p.Reference, &p.Name, &p.Description, &p.PriceCents,
		&p.Quantity, &p.MinQuantity, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %d", model.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// CreateProduct создаёт товар и возвращает его идентификатор.
func (r *PostgresRepository) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (reference, name, description, price, quantity, min_quantity, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.Reference, p.Name, p.Description, p.PriceCents, p.Quantity, p.MinQuantity, p.CategoryID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrReferenceExists, p.Reference)
		}
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

// UpdateProduct обновляет карточку товара. Складской остаток меняется
// только через AdjustStock и CreatePurchase.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE products
		 SET reference = $2, name = $3, description = $4, price = $5, min_quantity = $6,
		     category_id = $7, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Reference, p.Name, p.Description, p.PriceCents, p.MinQuantity, p.CategoryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", ErrReferenceExists, p.Reference)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", model.ErrNotFound, p.ID)
	}
	return nil
}

// DeleteProduct удаляет товар. Товар, на который ссылаются покупки или
// складские движения, удалить нельзя.
func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: product %d", ErrProductReferenced, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", model.ErrNotFound, id)
	}
	return nil
}

// ListCategories возвращает список категорий по имени.
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, created_at FROM category ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}

// CreateCategory создаёт категорию и возвращает её идентификатор.
func (r *PostgresRepository) CreateCategory(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO category (name, description) VALUES ($1, $2) RETURNING id`,
		name, description,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrCategoryExists, name)
		}
		return 0, fmt.Errorf("create category: %w", err)
	}
	return id, nil
}

// FindCustomerByName возвращает покупателя по точному совпадению имени.
// Имена не уникальны, поэтому при дубликатах берётся первая созданная запись.
func (r *PostgresRepository) FindCustomerByName(ctx context.Context, name string) (*model.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, phone, email, loyalty_points, total_spent, created_at
		 FROM users
		 WHERE name = $1
		 ORDER BY id
		 LIMIT 1`,
		name,
	)

	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.LoyaltyPoints, &c.TotalSpentCents, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %q", model.ErrNotFound, name)
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	return &c, nil
}

// CreateCustomer создаёт покупателя с нулевыми накопителями.
func (r *PostgresRepository) CreateCustomer(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

// ListCustomers возвращает всех покупателей по возрастанию идентификатора.
func (r *PostgresRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, email, loyalty_points, total_spent, created_at
		 FROM users
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.LoyaltyPoints, &c.TotalSpentCents, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return customers, nil
}

// UpdateCustomerContact обновляет контактные данные покупателя.
// Накопители лояльности меняются только через CreatePurchase.
func (r *PostgresRepository) UpdateCustomerContact(ctx context.Context, id int64, name, phone, email string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $2, phone = $3, email = $4 WHERE id = $1`,
		id, name, phone, email,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", model.ErrNotFound, id)
	}
	return nil
}

// DeleteCustomer удаляет покупателя без покупок.
func (r *PostgresRepository) DeleteCustomer(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: customer %d", ErrCustomerReferenced, id)
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", model.ErrNotFound, id)
	}
	return nil
}

// CreatePurchase атомарно оформляет покупку: блокирует строки товаров,
// проверяет остатки, обновляет накопители покупателя, записывает покупку
// с позициями по ценам из корзины и списывает остатки. При любой ошибке
// транзакция откатывается целиком.
//
// Проверка остатка и списание выполняются в одной транзакции, чтобы
// исключить гонку между параллельными кассами на одном товаре.
func (r *PostgresRepository) CreatePurchase(ctx context.Context, customerID, cashierID int64, lines []model.PurchaseLine, totalCents, pointsEarned int64) (int64, int64, error) {
	var purchaseID, newLoyaltyTotal int64

	err := r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		// Блокируем строки товаров в порядке следования позиций и проверяем
		// остатки по актуальным данным, а не по снимку корзины.
		for _, line := range lines {
			var name string
			var quantity int64
			err := tx.QueryRow(ctx,
				`SELECT name, quantity FROM products WHERE id = $1 FOR UPDATE`,
				line.ProductID,
			).Scan(&name, &quantity)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: product %d", model.ErrNotFound, line.ProductID)
				}
				return fmt.Errorf("lock product: %w", err)
			}

			if quantity < line.Quantity {
				return fmt.Errorf("%w: product %q", model.ErrInsufficientStock, name)
			}
		}

		err = tx.QueryRow(ctx,
			`UPDATE users
			 SET loyalty_points = loyalty_points + $2, total_spent = total_spent + $3
			 WHERE id = $1
			 RETURNING loyalty_points`,
			customerID, pointsEarned, totalCents,
		).Scan(&newLoyaltyTotal)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: customer %d", model.ErrNotFound, customerID)
			}
			return fmt.Errorf("update customer totals: %w", err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO purchases (user_id, total_amount, points_earned, created_by)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			customerID, totalCents, pointsEarned, cashierID,
		).Scan(&purchaseID)
		if err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}

		for _, line := range lines {
			_, err = tx.Exec(ctx,
				`INSERT INTO purchase_details (purchase_id, product_id, quantity, unit_price, total_price)
				 VALUES ($1, $2, $3, $4, $5)`,
				purchaseID, line.ProductID, line.Quantity, line.UnitPriceCents, line.Quantity*line.UnitPriceCents,
			)
			if err != nil {
				return fmt.Errorf("insert purchase detail: %w", err)
			}

			_, err = tx.Exec(ctx,
				`UPDATE products SET quantity = quantity - $2, updated_at = now() WHERE id = $1`,
				line.ProductID, line.Quantity,
			)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInsufficientStock) {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}

	return purchaseID, newLoyaltyTotal, nil
}

// ListPurchaseHistory возвращает историю покупок с позициями, новые сверху.
func (r *PostgresRepository) ListPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.created_at, u.name, pr.name, pd.quantity, pd.unit_price, pd.total_price, p.points_earned
		 FROM purchases p
		 JOIN users u ON p.user_id = u.id
		 JOIN purchase_details pd ON pd.purchase_id = p.id
		 JOIN products pr ON pd.product_id = pr.id
		 ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select purchase history: %w", err)
	}
	defer rows.Close()

	var records []model.PurchaseRecord
	for rows.Next() {
		var rec model.PurchaseRecord
		if err := rows.Scan(&rec.PurchasedAt, &rec.BuyerName, &rec.ProductName,
			&rec.Quantity, &rec.UnitPriceCents, &rec.LineTotalCents, &rec.PointsEarned); err != nil {
			return nil, fmt.Errorf("scan purchase record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// AdjustStock изменяет складской остаток и записывает движение в одной
// транзакции. Положительная delta — приход, отрицательная — расход.
func (r *PostgresRepository) AdjustStock(ctx context.Context, productID, delta int64, note string) (int64, error) {
	var newQuantity int64

	err := r.withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		var name string
		var quantity int64
		err = tx.QueryRow(ctx,
			`SELECT name, quantity FROM products WHERE id = $1 FOR UPDATE`,
			productID,
		).Scan(&name, &quantity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: product %d", model.ErrNotFound, productID)
			}
			return fmt.Errorf("lock product: %w", err)
		}

		if quantity+delta < 0 {
			return fmt.Errorf("%w: product %q", model.ErrInsufficientStock, name)
		}

		err = tx.QueryRow(ctx,
			`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1 RETURNING quantity`,
			productID, delta,
		).Scan(&newQuantity)
		if err != nil {
			return fmt.Errorf("update stock: %w", err)
		}

		movementType := model.MovementIn
		change := delta
		if delta < 0 {
			movementType = model.MovementOut
			change = -delta
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO stock_movements (product_id, quantity_change, movement_type, note)
			 VALUES ($1, $2, $3, $4)`,
			productID, change, string(movementType), note,
		)
		if err != nil {
			return fmt.Errorf("insert stock movement: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInsufficientStock) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", model.ErrStorage, err)
	}

	return newQuantity, nil
}

// ListLowStock возвращает товары с остатком не выше минимального.
func (r *PostgresRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, name, description, price, quantity, min_quantity, category_id, created_at, updated_at
		 FROM products
		 WHERE quantity <= min_quantity
		 ORDER BY quantity`,
	)
	if err != nil {
		return nil, fmt.Errorf("select low stock: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Reference, &p.Name, &p.Description, &p.PriceCents,
			&p.Quantity, &p.MinQuantity, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

// MovementFilter задаёт необязательные фильтры списка складских движений.
type MovementFilter struct {
	ProductID int64
	Type      model.MovementType
}

// ListStockMovements возвращает складские движения, новые сверху.
func (r *PostgresRepository) ListStockMovements(ctx context.Context, filter MovementFilter) ([]model.StockMovement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sm.id, sm.product_id, p.reference, p.name, sm.quantity_change, sm.movement_type,
		        sm.note, p.quantity, sm.created_at
		 FROM stock_movements sm
		 JOIN products p ON sm.product_id = p.id
		 WHERE ($1 = 0 OR sm.product_id = $1)
		   AND ($2 = '' OR sm.movement_type = $2)
		 ORDER BY sm.created_at DESC, sm.id DESC`,
		filter.ProductID, string(filter.Type),
	)
	if err != nil {
		return nil, fmt.Errorf("select stock movements: %w", err)
	}
	defer rows.Close()

	var movements []model.StockMovement
	for rows.Next() {
		var m model.StockMovement
		var movementType string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Reference, &m.ProductName,
			&m.QuantityChange, &movementType, &m.Note, &m.CurrentStock, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Type = model.MovementType(movementType)
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return movements, nil
}

// GetDashboardMetrics возвращает агрегаты панели показателей.
func (r *PostgresRepository) GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error) {
	var m model.DashboardMetrics

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(price * quantity), 0),
		        COUNT(*) FILTER (WHERE quantity <= min_quantity)
		 FROM products`,
	).Scan(&m.TotalProducts, &m.InventoryValueCents, &m.LowStockCount)
	if err != nil {
		return nil, fmt.Errorf("select product metrics: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT c.name, COUNT(p.id)
		 FROM category c
		 LEFT JOIN products p ON c.id = p.category_id
		 GROUP BY c.id, c.name
		 ORDER BY COUNT(p.id) DESC, c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("select category counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		m.ProductsPerCategory = append(m.ProductsPerCategory, cc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &m, nil
}
