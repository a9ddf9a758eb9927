package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
	"github.com/MavisWRLD/felho-beadando/internal/mocks"
	"github.com/MavisWRLD/felho-beadando/internal/notify"
)

func orderEvent() domain.OrderEvent {
	return domain.OrderEvent{
		Type:         "order_created",
		OrderID:      12,
		CustomerName: "Kovács Anna",
		Email:        "a@x.hu",
		Total:        3700,
		Items: []domain.RequestItem{
			{PizzaID: 1, Name: "Margherita", Quantity: 2, Price: 1200},
			{PizzaID: 3, Name: "Pepperoni", Quantity: 1, Price: 1300},
		},
	}
}

func TestConsumer_ProcessOrder(t *testing.T) {
	mailer := mocks.NewMailer(t)
	analytics := mocks.NewAnalyticsStore(t)
	consumer := notify.NewConsumer(nil, mailer, analytics)

	evt := orderEvent()
	mailer.On("SendOrderConfirmation", mock.Anything, evt).Return(nil).Once()
	analytics.On("RecordOrder", mock.Anything, evt).Return(nil).Once()

	consumer.ProcessOrder(context.Background(), evt)
}

func TestConsumer_IgnoresUnknownEventTypes(t *testing.T) {
	mailer := new(mocks.Mailer)
	analytics := new(mocks.AnalyticsStore)
	consumer := notify.NewConsumer(nil, mailer, analytics)

	evt := orderEvent()
	evt.Type = "order_cancelled"
	consumer.ProcessOrder(context.Background(), evt)

	mailer.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything)
	analytics.AssertNotCalled(t, "RecordOrder", mock.Anything, mock.Anything)
}

func TestConsumer_MailFailureStillRecordsAnalytics(t *testing.T) {
	mailer := mocks.NewMailer(t)
	analytics := mocks.NewAnalyticsStore(t)
	consumer := notify.NewConsumer(nil, mailer, analytics)

	evt := orderEvent()
	mailer.On("SendOrderConfirmation", mock.Anything, evt).
		Return(errors.New("resend: rate limited")).Once()
	analytics.On("RecordOrder", mock.Anything, evt).Return(nil).Once()

	consumer.ProcessOrder(context.Background(), evt)
}

func TestConsumer_NilMailerSkipsEmail(t *testing.T) {
	analytics := mocks.NewAnalyticsStore(t)
	consumer := notify.NewConsumer(nil, nil, analytics)

	evt := orderEvent()
	analytics.On("RecordOrder", mock.Anything, evt).Return(nil).Once()

	consumer.ProcessOrder(context.Background(), evt)
}
