package stock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/classwork"
)

// Product is a named item in stock with a quantity and a unit price.
//
// Name is never blank, quantity and price are never negative.
type Product struct {
	name     string
	quantity int
	price    Price
}

// NewProduct returns a validated Product, or an error joining every
// validation failure.
func NewProduct(name string, quantity int, price Price) (*Product, error) {
	err := errors.Join(
		validateName(name),
		validateQuantity(quantity),
		validatePrice(price),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid product %q: %w", name, err)
	}
	return &Product{name: name, quantity: quantity, price: price}, nil
}

// MustProduct is like NewProduct but panics on error.
func MustProduct(name string, quantity int, price Price) *Product {
	p, err := NewProduct(name, quantity, price)
	if err != nil {
		panic(err)
	}
	return p
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty: %w", classwork.ErrValue)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity %d cannot be lower than 0: %w", quantity, classwork.ErrValue)
	}
	return nil
}

func validatePrice(price Price) error {
	if price.IsNegative() {
		return fmt.Errorf("price %v cannot be lower than 0: %w", price, classwork.ErrValue)
	}
	return nil
}

func (p *Product) Name() string  { return p.name }
func (p *Product) Quantity() int { return p.quantity }
func (p *Product) Price() Price  { return p.price }

func (p *Product) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

func (p *Product) SetPrice(price Price) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// Cost returns quantity * price.
func (p *Product) Cost() Price { return p.price.Mul(p.quantity) }

// Adjust adds delta to the quantity. A result below zero is clamped to zero.
func (p *Product) Adjust(delta int) {
	p.quantity += delta
	if p.quantity < 0 {
		p.quantity = 0
	}
}

func (p *Product) Increase(n int) { p.Adjust(n) }
func (p *Product) Decrease(n int) { p.Adjust(-n) }

// String returns "<name> (quantity: <quantity> price: <price>)".
func (p *Product) String() string {
	return fmt.Sprintf("%s (quantity: %d price: %s)", p.name, p.quantity, p.price)
}

func (p *Product) clone() *Product {
	c := *p
	return &c
}

// equal reports whether p and q describe the same product: same name
// without regard to case, same quantity and same price.
func (p *Product) equal(q *Product) bool {
	return p.matches(q.name) && p.quantity == q.quantity && p.price.Equal(q.price)
}

// key implements Key: a product designates an equal product.
func (*Product) key() {}

// matches reports whether name designates p.
func (p *Product) matches(name string) bool { return strings.EqualFold(p.name, name) }
