package service

import (
	"context"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type PizzaRepository interface {
	ListPizzas() ([]domain.Pizza, error)
}

type OrderRepository interface {
	CreateOrder(req *domain.OrderRequest) (*domain.Order, error)
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Pizza, bool)
	Set(ctx context.Context, pizzas []domain.Pizza) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, evt domain.OrderEvent) error
}

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, evt domain.OrderEvent) error
}

type ImageStore interface {
	PresignGet(ctx context.Context, filename string) (string, error)
	Upload(ctx context.Context, filename, contentType string, body []byte) (location, key string, err error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Pizza, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error)
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}

type ImageServiceInterface interface {
	ImageURL(ctx context.Context, filename string) (string, error)
	Upload(ctx context.Context, filename, contentType string, body []byte) (location, key string, err error)
}
