// Package rational implements exact fractions over arbitrary precision
// integers.
//
// A Rational is always stored in lowest terms with a positive denominator:
// the sign is carried by the numerator and zero is 0 / 1. Arithmetic returns
// new values, the *Assign variants update the receiver in place.
//
// Operands are passed as an Operand: another *Rational, an Int, a *BigInt or,
// for comparisons only, a Float. Anything else fails with classwork.ErrType.
package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/etnz/classwork"
)

// Rational is a fraction num / den.
//
// The zero value is 0 / 1 and ready to use. Rational must not be copied by
// value once used; pass *Rational around.
type Rational struct {
	num big.Int
	den big.Int // zero only in the zero value, read through denom()
}

// New returns num / den in lowest terms.
// It fails with classwork.ErrDivisionByZero if den is 0.
func New(num, den int64) (*Rational, error) {
	return newReduced(big.NewInt(num), big.NewInt(den))
}

// NewBig is like New for arbitrary precision integers. num and den are not
// retained.
func NewBig(num, den *big.Int) (*Rational, error) {
	if num == nil || den == nil {
		return nil, fmt.Errorf("nil numerator or denominator: %w", classwork.ErrType)
	}
	return newReduced(num, den)
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) *Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse parses "n", "n/d" or "n / d" with base 10 integers of any size.
func Parse(s string) (*Rational, error) {
	numText, denText, found := strings.Cut(s, "/")
	numText = strings.TrimSpace(numText)
	denText = strings.TrimSpace(denText)
	if !found {
		denText = "1"
	}
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return nil, fmt.Errorf("invalid numerator %q in %q: %w", numText, s, classwork.ErrValue)
	}
	den, ok := new(big.Int).SetString(denText, 10)
	if !ok {
		return nil, fmt.Errorf("invalid denominator %q in %q: %w", denText, s, classwork.ErrValue)
	}
	return newReduced(num, den)
}

// newReduced copies num and den into a new Rational and reduces it.
func newReduced(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, fmt.Errorf("denominator of %s / 0: %w", num, classwork.ErrDivisionByZero)
	}
	r := new(Rational)
	r.num.Set(num)
	r.den.Set(den)
	r.reduce()
	return r, nil
}

// reduce moves the sign to the numerator and divides both parts by their
// greatest common divisor.
func (r *Rational) reduce() {
	if r.den.Sign() == 0 {
		r.den.SetInt64(1)
	}
	if r.den.Sign() < 0 {
		r.num.Neg(&r.num)
		r.den.Neg(&r.den)
	}
	if r.num.Sign() == 0 {
		r.den.SetInt64(1)
		return
	}
	var g, abs big.Int
	abs.Abs(&r.num)
	g.GCD(nil, nil, &abs, &r.den)
	if g.Cmp(bigOne) != 0 {
		r.num.Quo(&r.num, &g)
		r.den.Quo(&r.den, &g)
	}
}

// denom returns the denominator, taking the zero value into account.
func (r *Rational) denom() *big.Int {
	if r.den.Sign() == 0 {
		return bigOne
	}
	return &r.den
}

// Num returns a copy of the numerator. It carries the sign.
func (r *Rational) Num() *big.Int { return new(big.Int).Set(&r.num) }

// Denom returns a copy of the denominator, always positive.
func (r *Rational) Denom() *big.Int { return new(big.Int).Set(r.denom()) }

func (r *Rational) Sign() int    { return r.num.Sign() }
func (r *Rational) IsZero() bool { return r.num.Sign() == 0 }
func (r *Rational) IsInt() bool  { return r.denom().Cmp(bigOne) == 0 }

// String returns "<num> / <den>".
func (r *Rational) String() string {
	return fmt.Sprintf("%s / %s", &r.num, r.denom())
}

// Float64 returns the nearest float64 value.
func (r *Rational) Float64() float64 {
	f, _ := r.Rat().Float64()
	return f
}

// Rat returns the value as a new big.Rat.
func (r *Rational) Rat() *big.Rat { return new(big.Rat).SetFrac(&r.num, r.denom()) }
