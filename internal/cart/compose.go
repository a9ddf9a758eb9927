package cart

import (
	"errors"
	"strings"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingField = errors.New("all required fields must be filled")
)

// CustomerInfo carries the delivery details entered on the order form.
// Notes is optional; the rest are required.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// Compose snapshots the cart and customer fields into a wire payload.
// Only presence is validated; email and phone formats are not checked.
// The cart itself is left untouched: clearing happens after a confirmed
// successful submission, not here.
func Compose(c *Cart, info CustomerInfo) (domain.OrderRequest, error) {
	if c.Empty() {
		return domain.OrderRequest{}, ErrEmptyCart
	}

	name := strings.TrimSpace(info.Name)
	email := strings.TrimSpace(info.Email)
	phone := strings.TrimSpace(info.Phone)
	address := strings.TrimSpace(info.Address)
	if name == "" || email == "" || phone == "" || address == "" {
		return domain.OrderRequest{}, ErrMissingField
	}

	lines := c.Lines()
	items := make([]domain.RequestItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.RequestItem{
			PizzaID:  line.Pizza.ID,
			Name:     line.Pizza.Name,
			Quantity: line.Quantity,
			Price:    line.Pizza.Price,
		})
	}

	return domain.OrderRequest{
		CustomerName:  name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		Notes:         strings.TrimSpace(info.Notes),
		PaymentMethod: "cash",
		Items:         items,
		Total:         c.TotalPrice(),
	}, nil
}
