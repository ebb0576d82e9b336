package rational

import (
	"fmt"
	"math"
	"math/big"

	"github.com/etnz/classwork"
)

// Operand is the right-hand side of an arithmetic operation or a comparison.
//
// The set is closed: *Rational, Int, *BigInt and Float. Arithmetic accepts
// rationals and integers, comparisons additionally accept Float.
type Operand interface {
	operand()
}

// Int is a machine integer operand, treated as Int/1.
type Int int64

// BigInt is an arbitrary precision integer operand, treated as BigInt/1.
type BigInt big.Int

// Float is a floating point operand. It is only accepted by comparisons,
// where its exact binary value is used.
type Float float64

func (*Rational) operand() {}
func (Int) operand()       {}
func (*BigInt) operand()   {}
func (Float) operand()     {}

// Big returns x as an Operand.
func Big(x *big.Int) *BigInt { return (*BigInt)(x) }

var bigOne = big.NewInt(1)

// exact returns o as a numerator/denominator pair with a positive
// denominator. The returned values are borrowed and must not be modified.
// Float operands are rejected with ErrType unless floats is true.
func exact(o Operand, floats bool) (num, den *big.Int, err error) {
	switch v := o.(type) {
	case *Rational:
		if v == nil {
			return nil, nil, fmt.Errorf("nil rational operand: %w", classwork.ErrType)
		}
		return &v.num, v.denom(), nil
	case Int:
		return big.NewInt(int64(v)), bigOne, nil
	case *BigInt:
		if v == nil {
			return nil, nil, fmt.Errorf("nil integer operand: %w", classwork.ErrType)
		}
		return (*big.Int)(v), bigOne, nil
	case Float:
		if !floats {
			return nil, nil, fmt.Errorf("float operand %v, want a rational or an integer: %w", float64(v), classwork.ErrType)
		}
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil, fmt.Errorf("float operand %v is not a finite number: %w", f, classwork.ErrValue)
		}
		q := new(big.Rat).SetFloat64(f)
		return q.Num(), q.Denom(), nil
	default:
		return nil, nil, fmt.Errorf("operand of type %T: %w", o, classwork.ErrType)
	}
}
