package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, evt domain.OrderEvent) error
}

// ResendMailer delivers confirmation emails through the Resend HTTP API.
type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(from string) (*ResendMailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &ResendMailer{
		apiKey: key,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, evt domain.OrderEvent) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{evt.Email},
		Subject: fmt.Sprintf("Rendelés megerősítés #%d", evt.OrderID),
		HTML:    ConfirmationHTML(evt),
	}

	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send confirmation email: " + buf.String())
	}

	return nil
}

// ConfirmationHTML renders the order confirmation message body.
func ConfirmationHTML(evt domain.OrderEvent) string {
	lines := make([]string, 0, len(evt.Items))
	for _, item := range evt.Items {
		lines = append(lines, fmt.Sprintf("%s x%d - %d Ft", item.Name, item.Quantity, item.Quantity*item.Price))
	}

	return fmt.Sprintf(`
		<h2>Rendelés megerősítés</h2>
		<p>Kedves %s!</p>
		<p>Rendelésed sikeresen rögzítve lett.</p>
		<h3>Rendelés #%d</h3>
		<p><strong>Tételek:</strong><br>%s</p>
		<p><strong>Összesen: %d Ft</strong></p>
		<p>Szállítás: Utánvét (30-45 perc)</p>
		<p>Köszönjük a rendelést!</p>
	`, evt.CustomerName, evt.OrderID, strings.Join(lines, "<br>"), evt.Total)
}
