package common

import "math/big"

// Float64 divides the float approximations of both components, large
// operands lose precision or overflow to an infinity.
func (f Fraction) Float64() float64 {
	n, _ := new(big.Float).SetInt(f.num()).Float64()
	d, _ := new(big.Float).SetInt(f.den()).Float64()
	return n / d
}

func (f Fraction) Float32() float32 {
	return float32(f.Float64())
}

// Int64 truncates toward zero. Results for values outside the int64 range
// are platform dependent.
func (f Fraction) Int64() int64 {
	return int64(f.Float64())
}

func (f Fraction) Int() int {
	return int(f.Float64())
}

func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.num(), f.den())
}
