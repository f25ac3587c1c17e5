package domain

import (
	"fmt"
	"math"
	"strings"
)

type Category int

const (
	Adult Category = iota
	Child
	Infant
)

// CategoryCount is the number of ticket categories. Arrays indexed by Category use it
// as their length.
const CategoryCount = 3

var categoryNames = [CategoryCount]string{"ADULT", "CHILD", "INFANT"}

func (c Category) Valid() bool {
	return c >= Adult && c <= Infant
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return categoryNames[c]
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Adult, Child, Infant}
}

func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))

	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}

	return 0, NewInvalidPurchaseError(ReasonInvalidRequest, fmt.Sprintf("unknown ticket category %q", s))
}

// TicketTypeRequest asks for a number of tickets of a single category.
type TicketTypeRequest struct {
	category Category
	quantity int
}

func NewTicketTypeRequest(category Category, quantity int) (TicketTypeRequest, error) {
	req := TicketTypeRequest{category: category, quantity: quantity}

	err := req.Validate()
	if err != nil {
		return TicketTypeRequest{}, err
	}

	return req, nil
}

func (r TicketTypeRequest) Category() Category {
	return r.category
}

func (r TicketTypeRequest) Quantity() int {
	return r.quantity
}

// Validate reports whether the request is usable. The zero value is not.
func (r TicketTypeRequest) Validate() error {
	if !r.category.Valid() {
		return NewInvalidPurchaseError(ReasonInvalidRequest, fmt.Sprintf("unknown ticket category %d", int(r.category)))
	}

	if r.quantity <= 0 {
		return NewInvalidPurchaseError(
			ReasonInvalidRequest,
			fmt.Sprintf("quantity for %s must be greater than zero", r.category),
		)
	}

	return nil
}

// TicketCounts holds the summed quantity per category for a single purchase.
type TicketCounts [CategoryCount]int

func (c TicketCounts) Get(category Category) int {
	return c[category]
}

// Add increases the count for category by n, stopping at math.MaxInt instead of
// wrapping around.
func (c *TicketCounts) Add(category Category, n int) {
	c[category] = saturatingAdd(c[category], n)
}

// Total is the number of tickets across all categories, capped at math.MaxInt.
func (c TicketCounts) Total() int {
	total := 0
	for _, n := range c {
		total = saturatingAdd(total, n)
	}

	return total
}

// Seats is the number of seats the tickets occupy. Infants sit on an adult's lap.
func (c TicketCounts) Seats() int {
	return saturatingAdd(c[Adult], c[Child])
}

// Map returns the non-zero counts keyed by category name.
func (c TicketCounts) Map() map[string]int {
	m := make(map[string]int, CategoryCount)
	for _, category := range Categories() {
		if c[category] > 0 {
			m[category.String()] = c[category]
		}
	}

	return m
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}
