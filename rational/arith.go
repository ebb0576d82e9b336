package rational

import (
	"fmt"
	"math/big"

	"github.com/etnz/classwork"
)

// Add returns r + o.
func (r *Rational) Add(o Operand) (*Rational, error) {
	c, d, err := exact(o, false)
	if err != nil {
		return nil, err
	}
	var ad, cb, den big.Int
	ad.Mul(&r.num, d)
	cb.Mul(c, r.denom())
	den.Mul(r.denom(), d)
	return newReduced(ad.Add(&ad, &cb), &den)
}

// Sub returns r - o.
func (r *Rational) Sub(o Operand) (*Rational, error) {
	c, d, err := exact(o, false)
	if err != nil {
		return nil, err
	}
	var ad, cb, den big.Int
	ad.Mul(&r.num, d)
	cb.Mul(c, r.denom())
	den.Mul(r.denom(), d)
	return newReduced(ad.Sub(&ad, &cb), &den)
}

// Mul returns r * o.
func (r *Rational) Mul(o Operand) (*Rational, error) {
	c, d, err := exact(o, false)
	if err != nil {
		return nil, err
	}
	var num, den big.Int
	num.Mul(&r.num, c)
	den.Mul(r.denom(), d)
	return newReduced(&num, &den)
}

// Div returns r / o. It fails with classwork.ErrDivisionByZero if o is zero.
func (r *Rational) Div(o Operand) (*Rational, error) {
	c, d, err := exact(o, false)
	if err != nil {
		return nil, err
	}
	if c.Sign() == 0 {
		return nil, fmt.Errorf("divide %v by zero: %w", r, classwork.ErrDivisionByZero)
	}
	var num, den big.Int
	num.Mul(&r.num, d)
	den.Mul(r.denom(), c)
	return newReduced(&num, &den)
}

// IntDiv returns r / o rounded to the nearest integer, as a Rational with
// denominator 1. Ties round to the even integer: 5/2 gives 2, 7/2 gives 4.
//
// This is not a floor division.
func (r *Rational) IntDiv(o Operand) (*Rational, error) {
	q, err := r.Div(o)
	if err != nil {
		return nil, err
	}
	// den > 0 so the Euclidean quotient is the floor.
	var fl, m, twice big.Int
	fl.DivMod(&q.num, &q.den, &m)
	twice.Lsh(&m, 1)
	switch twice.Cmp(&q.den) {
	case 1:
		fl.Add(&fl, bigOne)
	case 0:
		if fl.Bit(0) == 1 {
			fl.Add(&fl, bigOne)
		}
	}
	return newReduced(&fl, bigOne)
}

// Set sets r to the value of o, a rational or an integer.
func (r *Rational) Set(o Operand) error {
	num, den, err := exact(o, false)
	if err != nil {
		return err
	}
	if src, ok := o.(*Rational); ok && src == r {
		return nil
	}
	r.num.Set(num)
	r.den.Set(den)
	r.reduce()
	return nil
}

// in-place variants. The receiver is unchanged when an error is returned.

func (r *Rational) AddAssign(o Operand) error    { return r.assign(r.Add, o) }
func (r *Rational) SubAssign(o Operand) error    { return r.assign(r.Sub, o) }
func (r *Rational) MulAssign(o Operand) error    { return r.assign(r.Mul, o) }
func (r *Rational) DivAssign(o Operand) error    { return r.assign(r.Div, o) }
func (r *Rational) IntDivAssign(o Operand) error { return r.assign(r.IntDiv, o) }

func (r *Rational) assign(op func(Operand) (*Rational, error), o Operand) error {
	res, err := op(o)
	if err != nil {
		return err
	}
	return r.Set(res)
}
