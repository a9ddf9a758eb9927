package client

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MavisWRLD/felho-beadando/internal/cart"
	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
)

var (
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrAlreadySubmitted   = errors.New("order already submitted")
	ErrSubmitFailed       = errors.New("a rendelés küldése sikertelen, kérjük próbálja újra később")
)

// Result carries what the success screen shows.
type Result struct {
	OrderID string
	Message string
}

// OrderClient submits a composed order to the storefront API. It allows
// a single submission at a time: while one is in flight further Submit
// calls are rejected, which is the double-click guard.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	state   State
	orderID string
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		state: StateIdle,
	}
}

func (c *OrderClient) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *OrderClient) OrderID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderID
}

// Reset returns a completed client to idle so a new order can be placed.
func (c *OrderClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSubmitting {
		c.state = StateIdle
		c.orderID = ""
	}
}

// Submit composes and sends the order. Validation failures surface
// before any network call. On failure the client returns to idle and
// the cart is untouched, so the same submission can be retried. On
// success the cart is cleared and the client stays in the terminal
// success state until Reset.
func (c *OrderClient) Submit(ctx context.Context, crt *cart.Cart, info cart.CustomerInfo) (Result, error) {
	req, err := cart.Compose(crt, info)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return Result{}, ErrSubmissionInFlight
	case StateSuccess:
		c.mu.Unlock()
		return Result{}, ErrAlreadySubmitted
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	resp, err := c.post(ctx, req)
	if err != nil {
		c.mu.Lock()
		c.state = StateIdle
		c.mu.Unlock()
		return Result{}, ErrSubmitFailed
	}

	// The server id is authoritative; the random fallback exists only
	// so the success screen always has something to show.
	orderID := randomDisplayID()
	if resp.OrderID > 0 {
		orderID = strconv.Itoa(resp.OrderID)
	}

	crt.Clear()

	c.mu.Lock()
	c.state = StateSuccess
	c.orderID = orderID
	c.mu.Unlock()

	return Result{OrderID: orderID, Message: resp.Message}, nil
}

func (c *OrderClient) post(ctx context.Context, payload domain.OrderRequest) (*domain.OrderResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var decoded domain.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &decoded, nil
}

func randomDisplayID() string {
	b := make([]byte, 5)
	rand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))[:9]
}
