package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MavisWRLD/felho-beadando/internal/cart"
	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

func testCatalog() []domain.Pizza {
	return []domain.Pizza{
		{ID: 1, Name: "Margherita", Price: 1200},
		{ID: 3, Name: "Pepperoni", Price: 1300},
	}
}

func filledCart() *cart.Cart {
	crt := cart.New()
	crt.Add(testCatalog(), 1)
	crt.Add(testCatalog(), 1)
	crt.Add(testCatalog(), 3)
	return crt
}

func testInfo() cart.CustomerInfo {
	return cart.CustomerInfo{
		Name:    "Kovács Anna",
		Email:   "a@x.hu",
		Phone:   "+36201234567",
		Address: "Fő utca 1",
	}
}

func TestSubmit_Success(t *testing.T) {
	var received domain.OrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(domain.OrderResponse{
			Success: true,
			OrderID: 12,
			Message: "Rendelés #12 sikeresen rögzítve. Utánvéttel 30-45 perc alatt érkezik.",
		})
	}))
	defer server.Close()

	crt := filledCart()
	orderClient := NewOrderClient(server.URL)

	result, err := orderClient.Submit(context.Background(), crt, testInfo())

	assert.NoError(t, err)
	assert.Equal(t, "12", result.OrderID)
	assert.Contains(t, result.Message, "#12")
	assert.Equal(t, StateSuccess, orderClient.State())
	assert.Equal(t, "12", orderClient.OrderID())
	assert.True(t, crt.Empty())

	assert.Equal(t, "Kovács Anna", received.CustomerName)
	assert.Equal(t, 3700, received.Total)
	assert.Len(t, received.Items, 2)
}

func TestSubmit_ServerErrorKeepsCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Rendelés rögzítési hiba"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	crt := filledCart()
	orderClient := NewOrderClient(server.URL)

	_, err := orderClient.Submit(context.Background(), crt, testInfo())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, StateIdle, orderClient.State())
	assert.Equal(t, 3, crt.TotalItems())
	assert.Equal(t, 3700, crt.TotalPrice())
}

func TestSubmit_UnreachableServerKeepsCart(t *testing.T) {
	crt := filledCart()
	orderClient := NewOrderClient("http://127.0.0.1:1")

	_, err := orderClient.Submit(context.Background(), crt, testInfo())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, StateIdle, orderClient.State())
	assert.False(t, crt.Empty())
}

func TestSubmit_EmptyCartSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL)
	_, err := orderClient.Submit(context.Background(), cart.New(), testInfo())

	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Equal(t, StateIdle, orderClient.State())
	assert.Equal(t, int32(0), calls.Load())
}

func TestSubmit_MissingFieldsSkipNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL)
	info := testInfo()
	info.Address = "   "

	_, err := orderClient.Submit(context.Background(), filledCart(), info)

	assert.ErrorIs(t, err, cart.ErrMissingField)
	assert.Equal(t, int32(0), calls.Load())
}

func TestSubmit_InFlightRejected(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(domain.OrderResponse{Success: true, OrderID: 1})
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL)

	firstDone := make(chan error, 1)
	go func() {
		_, err := orderClient.Submit(context.Background(), filledCart(), testInfo())
		firstDone <- err
	}()

	// Wait until the first submission holds the in-flight slot.
	assert.Eventually(t, func() bool {
		return orderClient.State() == StateSubmitting
	}, time.Second, 5*time.Millisecond)

	_, err := orderClient.Submit(context.Background(), filledCart(), testInfo())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	assert.NoError(t, <-firstDone)
	assert.Equal(t, StateSuccess, orderClient.State())
}

func TestSubmit_AfterSuccessRejectedUntilReset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.OrderResponse{Success: true, OrderID: 7})
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL)

	_, err := orderClient.Submit(context.Background(), filledCart(), testInfo())
	assert.NoError(t, err)

	_, err = orderClient.Submit(context.Background(), filledCart(), testInfo())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	orderClient.Reset()
	assert.Equal(t, StateIdle, orderClient.State())
	assert.Empty(t, orderClient.OrderID())

	result, err := orderClient.Submit(context.Background(), filledCart(), testInfo())
	assert.NoError(t, err)
	assert.Equal(t, "7", result.OrderID)
}

func TestSubmit_ZeroOrderIDGetsDisplayFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.OrderResponse{Success: true, OrderID: 0})
	}))
	defer server.Close()

	orderClient := NewOrderClient(server.URL)
	result, err := orderClient.Submit(context.Background(), filledCart(), testInfo())

	assert.NoError(t, err)
	assert.Len(t, result.OrderID, 9)
}
