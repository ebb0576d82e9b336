package rational

import "math/big"

// Cmp compares r and o and returns -1, 0 or +1.
//
// o may be a *Rational, an Int, a *BigInt or a Float. Floats are compared
// with their exact binary value, so Float(0.1) is not equal to 1/10.
func (r *Rational) Cmp(o Operand) (int, error) {
	c, d, err := exact(o, true)
	if err != nil {
		return 0, err
	}
	// both denominators are positive, cross multiplication keeps the order.
	var ad, cb big.Int
	ad.Mul(&r.num, d)
	cb.Mul(c, r.denom())
	return ad.Cmp(&cb), nil
}

func (r *Rational) Equal(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c == 0, err
}

func (r *Rational) NotEqual(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c != 0, err
}

func (r *Rational) LessThan(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c < 0, err
}

func (r *Rational) LessThanOrEqual(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c <= 0, err
}

func (r *Rational) GreaterThan(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c > 0, err
}

func (r *Rational) GreaterThanOrEqual(o Operand) (bool, error) {
	c, err := r.Cmp(o)
	return err == nil && c >= 0, err
}
