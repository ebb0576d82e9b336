package stock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// productLine is the JSON form of a product, one per line.
type productLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
}

// EncodeComposition writes every product of c as a JSON line, in order.
func EncodeComposition(w io.Writer, c *Composition) error {
	enc := json.NewEncoder(w)
	for _, p := range c.products {
		line := productLine{
			Name:     p.name,
			Quantity: p.quantity,
			Price:    p.price.value,
			Currency: p.price.cur,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("could not encode product %q: %w", p.name, err)
		}
	}
	return nil
}

// DecodeComposition reads a stream of JSON lines written by
// EncodeComposition. Every product goes through the same validations as
// NewProduct and Composition.Add.
func DecodeComposition(r io.Reader) (*Composition, error) {
	c := &Composition{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line productLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("line %d: could not decode %q: %w", n, string(lineBytes), err)
		}
		p, err := NewProduct(line.Name, line.Quantity, PriceIn(line.Price, line.Currency))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if err := c.Add(p); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
