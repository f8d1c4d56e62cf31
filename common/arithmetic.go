package common

import (
	"fmt"
	"math/big"
)

// Add puts both operands over the least common multiple of the denominators
// instead of their plain product to keep intermediates small.
func (f Fraction) Add(y Fraction) Fraction {
	b, d := f.den(), y.den()
	lcm := new(big.Int).Mul(b, d)
	lcm.Quo(lcm, gcd(b, d))

	left := new(big.Int).Quo(lcm, b)
	left.Mul(left, f.num())
	right := new(big.Int).Quo(lcm, d)
	right.Mul(right, y.num())
	return newFraction(left.Add(left, right), lcm).Reduce()
}

func (f Fraction) AddInt(n *big.Int) (Fraction, error) {
	if n == nil {
		return Fraction{}, ErrMissingOperand
	}
	return f.Add(newFraction(n, one)), nil
}

func (f Fraction) AddInt64(n int64) Fraction {
	return f.Add(NewIntegerInt64(n))
}

func (f Fraction) Sub(y Fraction) Fraction {
	return f.Add(y.mulInt(minusOne))
}

func (f Fraction) SubInt(n *big.Int) (Fraction, error) {
	if n == nil {
		return Fraction{}, ErrMissingOperand
	}
	return f.Sub(newFraction(n, one)), nil
}

func (f Fraction) SubInt64(n int64) Fraction {
	return f.Sub(NewIntegerInt64(n))
}

func (f Fraction) Mul(y Fraction) Fraction {
	n := new(big.Int).Mul(f.num(), y.num())
	d := new(big.Int).Mul(f.den(), y.den())
	return newFraction(n, d).Reduce()
}

func (f Fraction) MulInt(n *big.Int) (Fraction, error) {
	if n == nil {
		return Fraction{}, ErrMissingOperand
	}
	return f.mulInt(n), nil
}

func (f Fraction) MulInt64(n int64) Fraction {
	return f.mulInt(big.NewInt(n))
}

func (f Fraction) mulInt(n *big.Int) Fraction {
	return newFraction(new(big.Int).Mul(f.num(), n), f.den()).Reduce()
}

func (f Fraction) Div(y Fraction) (Fraction, error) {
	if y.IsZero() {
		return Fraction{}, fmt.Errorf("%w: division by zero %s / %s", ErrInvalidArgument, f, y)
	}
	n := new(big.Int).Mul(f.num(), y.den())
	d := new(big.Int).Mul(f.den(), y.num())
	return newFraction(n, d).Reduce(), nil
}

func (f Fraction) DivInt(n *big.Int) (Fraction, error) {
	if n == nil {
		return Fraction{}, ErrMissingOperand
	}
	if n.Sign() == 0 {
		return Fraction{}, fmt.Errorf("%w: division by zero %s / 0", ErrInvalidArgument, f)
	}
	d := new(big.Int).Mul(f.den(), n)
	return newFraction(f.num(), d).Reduce(), nil
}

func (f Fraction) DivInt64(n int64) (Fraction, error) {
	return f.DivInt(big.NewInt(n))
}
