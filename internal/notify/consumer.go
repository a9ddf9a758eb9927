package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type AnalyticsStore interface {
	RecordOrder(ctx context.Context, evt domain.OrderEvent) error
}

// Consumer turns order_created events into confirmation emails and
// daily analytics. Both effects are independent: a mail failure does
// not block the counters and vice versa.
type Consumer struct {
	Reader    *kafka.Reader
	Mailer    Mailer
	Analytics AnalyticsStore
}

func NewConsumer(reader *kafka.Reader, mailer Mailer, analytics AnalyticsStore) *Consumer {
	return &Consumer{
		Reader:    reader,
		Mailer:    mailer,
		Analytics: analytics,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order notification consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(ctx, evt)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, evt domain.OrderEvent) {
	if evt.Type != "order_created" {
		return
	}
	log.Printf("Processing order event: OrderID=%d, Total=%d", evt.OrderID, evt.Total)

	if c.Mailer != nil {
		if err := c.Mailer.SendOrderConfirmation(ctx, evt); err != nil {
			log.Printf("Error sending confirmation for order %d: %v", evt.OrderID, err)
		}
	}

	if c.Analytics != nil {
		if err := c.Analytics.RecordOrder(ctx, evt); err != nil {
			log.Printf("Error recording analytics for order %d: %v", evt.OrderID, err)
		}
	}
}
