// Package stock implements a small stock ledger.
//
// A Composition is an ordered collection of Products, unique by name without
// regard to case. It owns its products: Add and Replace store copies, Lookup
// and Products return copies, and contained products change only through
// the Composition methods (Adjust, SetQuantity, SetPrice, Replace).
package stock

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/classwork"
	"github.com/shopspring/decimal"
)

// Key designates a product in a Composition: either the *Product itself, or
// its Name.
type Key interface {
	key()
}

// Name designates a product by name, without regard to case.
type Name string

func (Name) key() {}

// Composition is the stock ledger.
type Composition struct {
	products []*Product
}

// NewComposition returns a Composition holding products, in order.
func NewComposition(products ...*Product) (*Composition, error) {
	c := &Composition{products: make([]*Product, 0, len(products))}
	if err := c.Add(products...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Composition) Len() int { return len(c.products) }

// Products returns copies of the products, in order.
func (c *Composition) Products() []*Product {
	products := make([]*Product, len(c.products))
	for i, p := range c.products {
		products[i] = p.clone()
	}
	return products
}

// Names returns the product names in order.
func (c *Composition) Names() []string {
	names := make([]string, len(c.products))
	for i, p := range c.products {
		names[i] = p.name
	}
	return names
}

// index returns the index of the product called name, or -1.
func (c *Composition) index(name string) int {
	return slices.IndexFunc(c.products, func(p *Product) bool { return p.matches(name) })
}

// Add appends copies of products in the given order.
//
// It fails with classwork.ErrDuplicateKey if a name is already in use, and
// with classwork.ErrType for a nil product. Nothing is added on error.
func (c *Composition) Add(products ...*Product) error {
	seen := make(map[string]bool, len(products))
	currency := c.Currency()
	for _, p := range products {
		if p == nil {
			return fmt.Errorf("cannot add a nil product: %w", classwork.ErrType)
		}
		key := strings.ToLower(p.name)
		if seen[key] || c.index(p.name) >= 0 {
			return fmt.Errorf("there is already a product called %q: %w", p.name, classwork.ErrDuplicateKey)
		}
		seen[key] = true
		if err := checkCurrency(currency, p); err != nil {
			return err
		}
		if currency == "" {
			currency = p.price.cur
		}
	}
	for _, p := range products {
		c.products = append(c.products, p.clone())
	}
	return nil
}

// Remove removes the designated products.
//
// A *Product key removes the product equal to it (same name, quantity and
// price), a Name key the product with that name. It fails with
// classwork.ErrEmptyCollection on an empty composition and with
// classwork.ErrNotFound for an unknown key. Nothing is removed on error.
func (c *Composition) Remove(keys ...Key) error {
	if len(c.products) == 0 {
		return fmt.Errorf("cannot remove from an empty composition: %w", classwork.ErrEmptyCollection)
	}
	remaining := slices.Clone(c.products)
	for _, k := range keys {
		var i int
		switch v := k.(type) {
		case *Product:
			if v == nil {
				return fmt.Errorf("cannot remove a nil product: %w", classwork.ErrType)
			}
			i = slices.IndexFunc(remaining, v.equal)
			if i < 0 {
				return fmt.Errorf("product %q is not in the composition: %w", v.name, classwork.ErrNotFound)
			}
		case Name:
			if err := validateName(string(v)); err != nil {
				return err
			}
			i = slices.IndexFunc(remaining, func(p *Product) bool { return p.matches(string(v)) })
			if i < 0 {
				return fmt.Errorf("no product called %q: %w", string(v), classwork.ErrNotFound)
			}
		default:
			return fmt.Errorf("cannot remove a %T: %w", k, classwork.ErrType)
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	c.products = remaining
	return nil
}

// Lookup returns a copy of the product called name. Changing the copy does
// not change c.
func (c *Composition) Lookup(name string) (*Product, error) {
	i, err := c.find(name)
	if err != nil {
		return nil, err
	}
	return c.products[i].clone(), nil
}

// find returns the index of the product called name.
func (c *Composition) find(name string) (int, error) {
	if err := validateName(name); err != nil {
		return -1, err
	}
	i := c.index(name)
	if i < 0 {
		return -1, fmt.Errorf("no product called %q: %w", name, classwork.ErrNotFound)
	}
	return i, nil
}

// Adjust adds delta to the quantity of the product called name, clamped at
// zero.
func (c *Composition) Adjust(name string, delta int) error {
	i, err := c.find(name)
	if err != nil {
		return err
	}
	c.products[i].Adjust(delta)
	return nil
}

// SetQuantity sets the quantity of the product called name.
func (c *Composition) SetQuantity(name string, quantity int) error {
	i, err := c.find(name)
	if err != nil {
		return err
	}
	return c.products[i].SetQuantity(quantity)
}

// SetPrice sets the price of the product called name. The price must be in
// the currency of the other products, or have none.
func (c *Composition) SetPrice(name string, price Price) error {
	i, err := c.find(name)
	if err != nil {
		return err
	}
	p := c.products[i].clone()
	if err := p.SetPrice(price); err != nil {
		return err
	}
	if err := checkCurrency(c.currencyWithout(i), p); err != nil {
		return err
	}
	c.products[i] = p
	return nil
}

// Replace puts a copy of p in place of the product called name.
//
// p may keep the name, change its case, or take a new name as long as no
// other product uses it.
func (c *Composition) Replace(name string, p *Product) error {
	if p == nil {
		return fmt.Errorf("cannot replace with a nil product: %w", classwork.ErrType)
	}
	i, err := c.find(name)
	if err != nil {
		return err
	}
	if j := c.index(p.name); j >= 0 && j != i {
		return fmt.Errorf("there is already a product called %q: %w", p.name, classwork.ErrDuplicateKey)
	}
	if err := checkCurrency(c.currencyWithout(i), p); err != nil {
		return err
	}
	c.products[i] = p.clone()
	return nil
}

// Currency returns the currency of the first priced product with one, or "".
// All products of a Composition share that currency or have none.
func (c *Composition) Currency() string { return c.currencyWithout(-1) }

// currencyWithout is the currency of every product but the one at index skip.
func (c *Composition) currencyWithout(skip int) string {
	for i, p := range c.products {
		if i != skip && p.price.cur != "" {
			return p.price.cur
		}
	}
	return ""
}

func checkCurrency(currency string, p *Product) error {
	if currency != "" && p.price.cur != "" && p.price.cur != currency {
		return fmt.Errorf("product %q is priced in %s, want %s: %w", p.name, p.price.cur, currency, classwork.ErrValue)
	}
	return nil
}

// TotalCost returns the sum of every product cost, in the composition
// currency.
func (c *Composition) TotalCost() Price {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(p.Cost().value)
	}
	return Price{value: total, cur: c.Currency()}
}

// Report returns the product called name and its cost on a single line.
func (c *Composition) Report(name string) (string, error) {
	i, err := c.find(name)
	if err != nil {
		return "", err
	}
	p := c.products[i]
	return fmt.Sprintf("%v total cost: %v", p, p.Cost()), nil
}

// String lists every product, one per line, followed by the total cost.
func (c *Composition) String() string {
	var b strings.Builder
	b.WriteString("Composition_\n")
	for _, p := range c.products {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total cost: %v", c.TotalCost())
	return b.String()
}
