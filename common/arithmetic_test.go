package common

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionArithmetic(t *testing.T) {
	assert := assert.New(t)

	x := MustFraction(1, 3)
	y := MustFraction(1, 4)
	sum := x.Add(y)
	assert.True(sum.Equal(MustFraction(7, 12)))
	assert.Equal("(7 / 12)", sum.String())
	assert.Equal("(1 / 3)", x.String())
	assert.Equal("(1 / 4)", y.String())

	assert.True(MustFraction(1, 5).AddInt64(2).Equal(MustFraction(11, 5)))
	assert.True(MustFraction(1, 5).AddInt64(0).Equal(MustFraction(1, 5)))
	assert.True(MustFraction(-1, -3).Add(MustFraction(1, -4)).Equal(MustFraction(1, 12)))

	diff := MustFraction(1, 3).Sub(MustFraction(5, 6))
	assert.True(diff.Equal(MustFraction(-1, 2)))
	assert.Equal("- (1 / 2)", diff.String())
	assert.True(MustFraction(10, 3).SubInt64(2).Equal(MustFraction(4, 3)))
	eight := MustFraction(8, 3)
	assert.True(eight.Sub(eight).Equal(NewIntegerInt64(0)))

	assert.True(MustFraction(2, 7).Mul(MustFraction(1, 2)).Equal(MustFraction(1, 7)))
	assert.True(MustFraction(2, 7).MulInt64(-14).Equal(NewIntegerInt64(-4)))
	assert.True(MustFraction(2, 7).MulInt64(0).Equal(NewIntegerInt64(0)))
	assert.Equal("-4", MustFraction(2, 7).MulInt64(-14).String())

	q, err := MustFraction(14, 27).Div(MustFraction(2, 9))
	assert.Nil(err)
	assert.True(q.Equal(MustFraction(7, 3)))
	q, err = MustFraction(14, 27).DivInt64(2)
	assert.Nil(err)
	assert.True(q.Equal(MustFraction(7, 27)))
	q, err = MustFraction(1, 2).Div(MustFraction(-1, 4))
	assert.Nil(err)
	assert.Equal("-2", q.String())

	_, err = MustFraction(14, 27).Div(NewIntegerInt64(0))
	assert.True(errors.Is(err, ErrInvalidArgument))
	_, err = MustFraction(14, 27).Div(MustFraction(0, -3))
	assert.True(errors.Is(err, ErrInvalidArgument))
	_, err = MustFraction(14, 27).DivInt64(0)
	assert.True(errors.Is(err, ErrInvalidArgument))
	_, err = MustFraction(14, 27).DivInt(big.NewInt(0))
	assert.True(errors.Is(err, ErrInvalidArgument))
}

func TestFractionIntegerOperands(t *testing.T) {
	assert := assert.New(t)

	f := MustFraction(3, 4)
	v, err := f.AddInt(big.NewInt(1))
	assert.Nil(err)
	assert.Equal("(7 / 4)", v.String())
	v, err = f.SubInt(big.NewInt(1))
	assert.Nil(err)
	assert.Equal("- (1 / 4)", v.String())
	v, err = f.MulInt(big.NewInt(4))
	assert.Nil(err)
	assert.Equal("3", v.String())
	v, err = f.DivInt(big.NewInt(-3))
	assert.Nil(err)
	assert.Equal("- (1 / 4)", v.String())

	_, err = f.AddInt(nil)
	assert.True(errors.Is(err, ErrMissingOperand))
	_, err = f.SubInt(nil)
	assert.True(errors.Is(err, ErrMissingOperand))
	_, err = f.MulInt(nil)
	assert.True(errors.Is(err, ErrMissingOperand))
	_, err = f.DivInt(nil)
	assert.True(errors.Is(err, ErrMissingOperand))
	assert.Equal("(3 / 4)", f.String())
}

func TestFractionArithmeticProperties(t *testing.T) {
	assert := assert.New(t)

	samples := sampleFractions()
	for _, x := range samples {
		assert.True(x.Sub(x).Equal(Zero), x.String())
		assert.True(x.MulInt64(0).Equal(Zero), x.String())
		assert.True(x.Mul(Zero).Equal(Zero), x.String())
		assert.True(x.Add(Zero).Equal(x), x.String())
		assert.True(x.Mul(One).Equal(x), x.String())

		if x.IsZero() {
			_, err := One.Div(x)
			assert.True(errors.Is(err, ErrInvalidArgument))
		} else {
			q, err := x.Div(x)
			assert.Nil(err)
			assert.True(q.Equal(One), x.String())
		}

		for _, y := range samples {
			assert.True(x.Add(y).Equal(y.Add(x)), x.String()+" "+y.String())
			assert.True(x.Mul(y).Equal(y.Mul(x)), x.String()+" "+y.String())
			assert.True(x.Sub(y).Add(y).Equal(x), x.String()+" "+y.String())
			for _, z := range samples {
				assert.True(x.Add(y).Add(z).Equal(x.Add(y.Add(z))))
			}
		}
	}
}
