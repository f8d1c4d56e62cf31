package common

import (
	"fmt"
	"math/big"
)

var (
	one      = big.NewInt(1)
	minusOne = big.NewInt(-1)

	Zero Fraction
	One  Fraction
)

func init() {
	Zero = NewIntegerInt64(0)
	One = NewIntegerInt64(1)
}

// Fraction is an exact rational number. The numerator and denominator are
// kept as given, reduction happens on every derived value instead. Values are
// never changed once returned, so they can be shared between goroutines.
//
// The zero value is 0.
type Fraction struct {
	x big.Int
	y big.Int
}

func NewFraction(numerator, denominator *big.Int) (v Fraction, err error) {
	if numerator == nil || denominator == nil {
		return v, ErrMissingOperand
	}
	if denominator.Sign() == 0 {
		return v, fmt.Errorf("%w: denominator must be non-zero", ErrInvalidArgument)
	}
	v.x.Set(numerator)
	v.y.Set(denominator)
	return v, nil
}

func NewFractionInt64(numerator, denominator int64) (Fraction, error) {
	return NewFraction(big.NewInt(numerator), big.NewInt(denominator))
}

// MustFraction is NewFractionInt64 for values known to be valid.
func MustFraction(numerator, denominator int64) Fraction {
	v, err := NewFractionInt64(numerator, denominator)
	if err != nil {
		panic(fmt.Errorf("MustFraction(%d, %d) => %v", numerator, denominator, err))
	}
	return v
}

func NewInteger(n *big.Int) (Fraction, error) {
	if n == nil {
		return Fraction{}, ErrMissingOperand
	}
	return NewFraction(n, one)
}

func NewIntegerInt64(n int64) Fraction {
	return newFraction(big.NewInt(n), one)
}

// newFraction skips validation, d must be non-zero.
func newFraction(n, d *big.Int) (v Fraction) {
	v.x.Set(n)
	v.y.Set(d)
	return
}

func (f Fraction) num() *big.Int {
	return &f.x
}

func (f Fraction) den() *big.Int {
	if f.y.Sign() == 0 {
		return one
	}
	return &f.y
}

// Reduce returns f in lowest terms with the sign carried by the numerator.
func (f Fraction) Reduce() Fraction {
	n, d := f.reduced()
	return newFraction(n, d)
}

// reduced returns fresh copies of the lowest terms components, the
// denominator is always positive.
func (f Fraction) reduced() (*big.Int, *big.Int) {
	n, d := new(big.Int).Set(f.num()), new(big.Int).Set(f.den())
	g := gcd(n, d)
	n.Quo(n, g)
	d.Quo(d, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return n, d
}

// gcd of the magnitudes, gcd(0, b) is |b|.
func gcd(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	if x.Sign() == 0 {
		return y
	}
	if y.Sign() == 0 {
		return x
	}
	return new(big.Int).GCD(nil, nil, x, y)
}

func (f Fraction) IsNegative() bool {
	if f.x.Sign() == 0 {
		return false
	}
	return (f.x.Sign() >= 0) != (f.den().Sign() >= 0)
}

func (f Fraction) IsZero() bool {
	return f.x.Sign() == 0
}

func (f Fraction) Sign() int {
	switch {
	case f.IsZero():
		return 0
	case f.IsNegative():
		return -1
	default:
		return 1
	}
}

func (f Fraction) Abs() Fraction {
	if !f.IsNegative() {
		return f
	}
	return f.MulInt64(-1)
}
