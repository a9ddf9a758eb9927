package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

func testCatalog() []domain.Pizza {
	return []domain.Pizza{
		{ID: 1, Name: "Margherita", Description: "Paradicsomszósz, mozzarella, bazsalikom", Price: 1200},
		{ID: 3, Name: "Pepperoni", Description: "Paradicsomszósz, mozzarella, pepperoni", Price: 1300},
		{ID: 11, Name: "Seafood Deluxe", Description: "Garnéla, kagyló, tintahal, olívaolaj", Price: 1800},
	}
}

func TestCart_AddAndTotals(t *testing.T) {
	catalog := testCatalog()
	c := New()

	c.Add(catalog, 1)
	c.Add(catalog, 1)
	c.Add(catalog, 3)

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 2*1200+1300, c.TotalPrice())

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "Margherita", lines[0].Pizza.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Pepperoni", lines[1].Pizza.Name)
}

func TestCart_AddUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.Add(testCatalog(), 999)

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0, c.TotalPrice())
}

func TestCart_IncreaseDecrease(t *testing.T) {
	catalog := testCatalog()
	c := New()

	c.Add(catalog, 1)
	c.Increase(1)
	c.Increase(1)
	assert.Equal(t, 3, c.TotalItems())

	c.Decrease(1)
	assert.Equal(t, 2, c.TotalItems())

	// Missing ids are no-ops, not errors.
	c.Increase(42)
	c.Decrease(42)
	assert.Equal(t, 2, c.TotalItems())
}

func TestCart_DecreaseToZeroRemovesLine(t *testing.T) {
	catalog := testCatalog()
	c := New()

	c.Add(catalog, 3)
	c.Decrease(3)

	assert.True(t, c.Empty())
	assert.Len(t, c.Lines(), 0)

	// Further decreases stay no-ops.
	c.Decrease(3)
	assert.True(t, c.Empty())
}

func TestCart_InvariantsAcrossSequences(t *testing.T) {
	catalog := testCatalog()
	c := New()

	ops := []func(){
		func() { c.Add(catalog, 1) },
		func() { c.Add(catalog, 3) },
		func() { c.Increase(1) },
		func() { c.Decrease(3) },
		func() { c.Add(catalog, 11) },
		func() { c.Decrease(1) },
		func() { c.Increase(11) },
		func() { c.Decrease(999) },
	}

	for _, op := range ops {
		op()

		wantItems, wantPrice := 0, 0
		for _, line := range c.Lines() {
			assert.Greater(t, line.Quantity, 0)
			wantItems += line.Quantity
			wantPrice += line.Pizza.Price * line.Quantity
		}
		assert.Equal(t, wantItems, c.TotalItems())
		assert.Equal(t, wantPrice, c.TotalPrice())
	}
}

func TestCart_Clear(t *testing.T) {
	catalog := testCatalog()
	c := New()
	c.Add(catalog, 1)
	c.Add(catalog, 3)

	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Len(t, c.Lines(), 0)
}

func TestCompose_Success(t *testing.T) {
	catalog := testCatalog()
	c := New()
	c.Add(catalog, 1)
	c.Increase(1)
	c.Add(catalog, 3)

	req, err := Compose(c, CustomerInfo{
		Name:    "Kovács Anna",
		Email:   "a@x.hu",
		Phone:   "+36201234567",
		Address: "Fő utca 1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Kovács Anna", req.CustomerName)
	assert.Equal(t, "cash", req.PaymentMethod)
	assert.Equal(t, 3700, req.Total)
	assert.Len(t, req.Items, 2)
	assert.Equal(t, domain.RequestItem{PizzaID: 1, Name: "Margherita", Quantity: 2, Price: 1200}, req.Items[0])
	assert.Equal(t, domain.RequestItem{PizzaID: 3, Name: "Pepperoni", Quantity: 1, Price: 1300}, req.Items[1])

	sum := 0
	for _, item := range req.Items {
		sum += item.Quantity * item.Price
	}
	assert.Equal(t, req.Total, sum)

	// Composing must not touch the cart.
	assert.Equal(t, 3, c.TotalItems())
}

func TestCompose_EmptyCart(t *testing.T) {
	_, err := Compose(New(), CustomerInfo{
		Name: "Kovács Anna", Email: "a@x.hu", Phone: "+36201234567", Address: "Fő utca 1",
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCompose_MissingFields(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		info CustomerInfo
	}{
		{"missing name", CustomerInfo{Email: "a@x.hu", Phone: "+3620", Address: "Fő utca 1"}},
		{"missing email", CustomerInfo{Name: "Anna", Phone: "+3620", Address: "Fő utca 1"}},
		{"missing phone", CustomerInfo{Name: "Anna", Email: "a@x.hu", Address: "Fő utca 1"}},
		{"missing address", CustomerInfo{Name: "Anna", Email: "a@x.hu", Phone: "+3620"}},
		{"whitespace only", CustomerInfo{Name: "   ", Email: "a@x.hu", Phone: "+3620", Address: "Fő utca 1"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New()
			c.Add(catalog, 1)

			_, err := Compose(c, testCase.info)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestCompose_NotesOptionalAndTrimmed(t *testing.T) {
	c := New()
	c.Add(testCatalog(), 1)

	req, err := Compose(c, CustomerInfo{
		Name:    "  Kovács Anna ",
		Email:   " a@x.hu ",
		Phone:   "+36201234567",
		Address: "Fő utca 1",
		Notes:   "  csengő rossz  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Kovács Anna", req.CustomerName)
	assert.Equal(t, "a@x.hu", req.Email)
	assert.Equal(t, "csengő rossz", req.Notes)
}
