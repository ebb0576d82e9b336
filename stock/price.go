package stock

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/classwork"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price is the unit price of a product, or a cost.
//
// The currency is optional. Without one, a Price prints as a plain decimal
// number.
type Price struct {
	value decimal.Decimal
	cur   string
}

// P returns a Price without currency.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// PriceIn returns a Price in the given ISO 4217 currency.
func PriceIn[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Price {
	return Price{value: newDecimal(value), cur: currency}
}

// ParsePrice parses a decimal number such as "50.99".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, classwork.ErrValue)
	}
	return Price{value: d}, nil
}

func (p Price) Decimal() decimal.Decimal       { return p.value }
func (p Price) Currency() string               { return p.cur }
func (p Price) IsZero() bool                   { return p.value.IsZero() }
func (p Price) IsNegative() bool               { return p.value.IsNegative() }
func (p Price) Equal(q Price) bool             { return p.value.Equal(q.value) && p.cur == q.cur }
func (p Price) Mul(quantity int) Price         { return Price{value: p.value.Mul(decimal.NewFromInt(int64(quantity))), cur: p.cur} }
func (p Price) WithCurrency(code string) Price { return Price{value: p.value, cur: code} }

// String returns the plain decimal value, regardless of the currency.
func (p Price) String() string { return p.value.String() }

// Format returns the value formatted for its currency, for instance "$50.99".
// Without currency it is the same as String.
func (p Price) Format() string {
	if p.cur == "" {
		return p.String()
	}
	c := money.New(0, p.cur).Currency()
	minor := p.value.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// Add returns p + q. A price without currency takes the currency of the
// other one; two different currencies fail with classwork.ErrValue.
func (p Price) Add(q Price) (Price, error) {
	c, err := cur(p, q)
	if err != nil {
		return Price{}, err
	}
	return Price{value: p.value.Add(q.value), cur: c}, nil
}

// makes the "" currency totally weak.
func cur(a, b Price) (string, error) {
	switch {
	case a.cur == "":
		return b.cur, nil
	case b.cur == "", a.cur == b.cur:
		return a.cur, nil
	}
	return "", fmt.Errorf("currency mismatch %s != %s: %w", a.cur, b.cur, classwork.ErrValue)
}
