package storage

import (
	"database/sql"
	"fmt"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pizzas (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			price INTEGER NOT NULL,
			image_filename VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			address TEXT NOT NULL,
			notes TEXT,
			total_price INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
			qr_code BYTEA,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			pizza_id INTEGER NOT NULL,
			pizza_name VARCHAR(100) NOT NULL,
			quantity INTEGER NOT NULL,
			price_per_unit INTEGER NOT NULL,
			subtotal INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedPizzas loads the menu on first start. An already populated table
// is left alone.
func (r *PostgresRepository) SeedPizzas(pizzas []domain.Pizza) error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM pizzas").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range pizzas {
		if _, err := r.DB.Exec(
			"INSERT INTO pizzas (name, description, price, image_filename) VALUES ($1, $2, $3, $4)",
			p.Name, p.Description, p.Price, p.ImageFilename,
		); err != nil {
			return fmt.Errorf("seed pizza %q: %w", p.Name, err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListPizzas() ([]domain.Pizza, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_filename, ''), created_at
		FROM pizzas
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pizzas := []domain.Pizza{}
	for rows.Next() {
		var p domain.Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageFilename, &p.CreatedAt); err != nil {
			continue
		}
		pizzas = append(pizzas, p)
	}
	return pizzas, nil
}

// CreateOrder writes the order header and its items in one transaction.
// Either everything is persisted or nothing is: any failure rolls the
// whole order back. Subtotals are computed here, not taken from the
// request.
func (r *PostgresRepository) CreateOrder(req *domain.OrderRequest) (*domain.Order, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order := &domain.Order{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		TotalPrice:    req.Total,
		Status:        "pending",
		PaymentMethod: "cash",
	}

	if err := tx.QueryRow(`
		INSERT INTO orders (customer_name, email, phone, address, notes, total_price, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'cash', 'pending')
		RETURNING id, created_at
	`, req.CustomerName, req.Email, req.Phone, req.Address, req.Notes, req.Total).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		subtotal := item.Quantity * item.Price
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, pizza_id, pizza_name, quantity, price_per_unit, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.PizzaID, item.Name, item.Quantity, item.Price, subtotal); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			OrderID:      order.ID,
			PizzaID:      item.PizzaID,
			PizzaName:    item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.Price,
			Subtotal:     subtotal,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, customer_name, email, phone, address, COALESCE(notes, ''), total_price, status, payment_method, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.CustomerName, &order.Email, &order.Phone, &order.Address,
		&order.Notes, &order.TotalPrice, &order.Status, &order.PaymentMethod,
		&order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT order_id, pizza_id, pizza_name, quantity, price_per_unit, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.PizzaID, &item.PizzaName, &item.Quantity, &item.PricePerUnit, &item.Subtotal); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_name, email, phone, address, COALESCE(notes, ''), total_price, status, payment_method, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.CustomerName, &order.Email, &order.Phone, &order.Address,
			&order.Notes, &order.TotalPrice, &order.Status, &order.PaymentMethod,
			&order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(
		"UPDATE orders SET qr_code = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
