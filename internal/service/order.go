package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

var (
	ErrInvalidOrder  = errors.New("missing required order fields")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
	mailer    Mailer
}

func NewOrderService(repo OrderRepository, qr QRGenerator, publisher OrderPublisher, mailer Mailer) *OrderService {
	return &OrderService{
		repo:      repo,
		qrEncoder: qr,
		publisher: publisher,
		mailer:    mailer,
	}
}

// Create validates the request and persists the order atomically.
// Everything after the commit (QR code, event, email) is best effort
// and cannot fail the order.
func (s *OrderService) Create(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	order, err := s.repo.CreateOrder(req)
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			if err := s.repo.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("Warning: failed to store QR code for order %d: %v", order.ID, err)
			}
		}
	}

	evt := domain.OrderEvent{
		Type:         "order_created",
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Items:        req.Items,
		Total:        order.TotalPrice,
		Timestamp:    time.Now(),
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, evt); err != nil {
			log.Printf("Warning: failed to publish order %d event: %v", order.ID, err)
		}
	} else if s.mailer != nil {
		// No broker configured: send the confirmation directly.
		if err := s.mailer.SendOrderConfirmation(ctx, evt); err != nil {
			log.Printf("Warning: confirmation email for order %d failed (order is OK): %v", order.ID, err)
		}
	}

	return order, nil
}

func validate(req *domain.OrderRequest) error {
	if req == nil ||
		strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		len(req.Items) == 0 {
		return ErrInvalidOrder
	}
	return nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
				log.Printf("Warning: failed to cache regenerated QR code: %v", err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
