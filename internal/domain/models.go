package domain

import "time"

// Pizza is a catalog entry. Prices are whole forints.
type Pizza struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	ImageFilename string    `json:"image_filename"`
	CreatedAt     time.Time `json:"created_at"`
}

type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Notes         string      `json:"notes"`
	TotalPrice    int         `json:"total_price"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Items         []OrderItem `json:"items"`
}

// OrderItem keeps a snapshot of the pizza name and unit price at order
// time, so historical orders stay accurate when the menu changes.
type OrderItem struct {
	OrderID      int    `json:"order_id"`
	PizzaID      int    `json:"pizza_id"`
	PizzaName    string `json:"pizza_name"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int    `json:"price_per_unit"`
	Subtotal     int    `json:"subtotal"`
}

// OrderRequest is the wire payload submitted by the storefront.
type OrderRequest struct {
	CustomerName  string        `json:"customer_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
	PaymentMethod string        `json:"payment_method"`
	Items         []RequestItem `json:"items"`
	Total         int           `json:"total"`
}

type RequestItem struct {
	PizzaID  int    `json:"pizza_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// OrderResponse is returned by POST /api/orders.
type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID int    `json:"orderId"`
	Message string `json:"message"`
}

// OrderEvent is published to Kafka after an order transaction commits.
type OrderEvent struct {
	Type         string        `json:"type"`
	OrderID      int           `json:"order_id"`
	CustomerName string        `json:"customer_name"`
	Email        string        `json:"email"`
	Items        []RequestItem `json:"items"`
	Total        int           `json:"total"`
	Timestamp    time.Time     `json:"timestamp"`
}
