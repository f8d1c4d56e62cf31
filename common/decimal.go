package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/MixinNetwork/fraction/config"
	"github.com/shopspring/decimal"
)

var ten = big.NewInt(10)

// FromDecimal converts a finite decimal exactly, 0.50 becomes 1/2. The cost
// grows with the exponent, untrusted text goes through ParseDecimal.
func FromDecimal(d decimal.Decimal) Fraction {
	n := new(big.Int).Set(d.Coefficient())
	exp := int64(d.Exponent())
	if exp >= 0 {
		n.Mul(n, new(big.Int).Exp(ten, big.NewInt(exp), nil))
		return newFraction(n, one)
	}
	scale := new(big.Int).Exp(ten, big.NewInt(-exp), nil)
	return newFraction(n, scale).Reduce()
}

func ParseDecimal(s string) (Fraction, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q %s", ErrInvalidFormat, s, err.Error())
	}
	if exp := int64(d.Exponent()); exp > config.MaximumDecimalExponent || exp < -config.MaximumDecimalExponent {
		return Fraction{}, fmt.Errorf("%w: %q exponent %d out of range", ErrInvalidFormat, s, exp)
	}
	return FromDecimal(d), nil
}

// Decimal rounds f half away from zero to the given number of places.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	n, d := f.reduced()
	return decimal.NewFromBigInt(n, 0).DivRound(decimal.NewFromBigInt(d, 0), places)
}
