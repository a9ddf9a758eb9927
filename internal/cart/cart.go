package cart

import (
	"github.com/MavisWRLD/felho-beadando/internal/domain"
)

// Line pairs a pizza snapshot with the requested quantity.
// A line with quantity 0 never exists: it is removed instead.
type Line struct {
	Pizza    domain.Pizza
	Quantity int
}

// Cart holds one session's selection. It is a plain value owned by its
// caller; reducers mutate only the cart itself.
type Cart struct {
	lines map[int]*Line
	order []int
}

func New() *Cart {
	return &Cart{lines: make(map[int]*Line)}
}

// Add puts one unit of the given pizza into the cart. An id not present
// in the catalog is ignored.
func (c *Cart) Add(catalog []domain.Pizza, pizzaID int) {
	if line, ok := c.lines[pizzaID]; ok {
		line.Quantity++
		return
	}
	for _, p := range catalog {
		if p.ID == pizzaID {
			c.lines[pizzaID] = &Line{Pizza: p, Quantity: 1}
			c.order = append(c.order, pizzaID)
			return
		}
	}
}

// Increase bumps the quantity of an existing line. No-op for unknown ids.
func (c *Cart) Increase(pizzaID int) {
	if line, ok := c.lines[pizzaID]; ok {
		line.Quantity++
	}
}

// Decrease lowers the quantity of an existing line, removing the line
// when it reaches zero. No-op for unknown ids.
func (c *Cart) Decrease(pizzaID int) {
	line, ok := c.lines[pizzaID]
	if !ok {
		return
	}
	line.Quantity--
	if line.Quantity == 0 {
		delete(c.lines, pizzaID)
		for i, id := range c.order {
			if id == pizzaID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Cart) Clear() {
	c.lines = make(map[int]*Line)
	c.order = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// TotalItems is the badge count: the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity across all lines.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, line := range c.lines {
		total += line.Pizza.Price * line.Quantity
	}
	return total
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}
