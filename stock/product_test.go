package stock

import (
	"errors"
	"testing"

	"github.com/etnz/classwork"
)

func TestNewProduct(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
		price    Price
		wantErr  bool
	}{
		{name: "Cup", quantity: 1, price: P(1.0)},
		{name: "Free sample", quantity: 0, price: P(0)},
		{name: "", quantity: 1, price: P(1.0), wantErr: true},
		{name: "   ", quantity: 1, price: P(1.0), wantErr: true},
		{name: "Cup", quantity: -1, price: P(1.0), wantErr: true},
		{name: "Cup", quantity: 1, price: P(-0.01), wantErr: true},
	}
	for _, tc := range testCases {
		_, err := NewProduct(tc.name, tc.quantity, tc.price)
		if tc.wantErr {
			if !errors.Is(err, classwork.ErrValue) {
				t.Errorf("NewProduct(%q, %d, %v) error = %v, want %v", tc.name, tc.quantity, tc.price, err, classwork.ErrValue)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewProduct(%q, %d, %v) returned an unexpected error: %v", tc.name, tc.quantity, tc.price, err)
		}
	}
}

func TestNewProduct_JoinsErrors(t *testing.T) {
	_, err := NewProduct("", -1, P(-1))
	if err == nil {
		t.Fatal("NewProduct with three invalid fields returned no error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 3 {
		t.Errorf("NewProduct error = %v, want three joined failures", err)
	}
}

func TestProduct_Setters(t *testing.T) {
	p := MustProduct("Cup", 3, P(2))
	if err := p.SetQuantity(-2); !errors.Is(err, classwork.ErrValue) {
		t.Errorf("SetQuantity(-2) error = %v, want %v", err, classwork.ErrValue)
	}
	if err := p.SetPrice(P(-2)); !errors.Is(err, classwork.ErrValue) {
		t.Errorf("SetPrice(-2) error = %v, want %v", err, classwork.ErrValue)
	}
	if err := p.SetName(""); !errors.Is(err, classwork.ErrValue) {
		t.Errorf("SetName(\"\") error = %v, want %v", err, classwork.ErrValue)
	}
	if p.String() != "Cup (quantity: 3 price: 2)" {
		t.Errorf("failed setters changed the product: %v", p)
	}
	if err := p.SetQuantity(5); err != nil {
		t.Fatalf("SetQuantity(5) returned an unexpected error: %v", err)
	}
	if p.Quantity() != 5 {
		t.Errorf("Quantity() = %d, want 5", p.Quantity())
	}
}

func TestProduct_Adjust(t *testing.T) {
	p := MustProduct("X", 5, P(2.0))
	p.Adjust(-10)
	if p.Quantity() != 0 {
		t.Errorf("Adjust(-10) on 5 left quantity %d, want 0", p.Quantity())
	}
	p.Increase(4)
	p.Decrease(1)
	if p.Quantity() != 3 {
		t.Errorf("quantity = %d, want 3", p.Quantity())
	}
}

func TestProduct_CostAndString(t *testing.T) {
	p := MustProduct("Cup Witcher", 24, P(50.99))
	if got := p.Cost().String(); got != "1223.76" {
		t.Errorf("Cost() = %s, want 1223.76", got)
	}
	want := "Cup Witcher (quantity: 24 price: 50.99)"
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}
