package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionParse(t *testing.T) {
	assert := assert.New(t)

	f, err := Parse("1/2")
	assert.Nil(err)
	assert.Equal("(1 / 2)", f.String())
	f, err = Parse("- 1/3")
	assert.Nil(err)
	assert.Equal("- (1 / 3)", f.String())
	f, err = Parse("  + 4 / 8 ")
	assert.Nil(err)
	assert.Equal("(1 / 2)", f.String())
	f, err = Parse("-6/3")
	assert.Nil(err)
	assert.Equal("-2", f.String())
	f, err = Parse("30/40")
	assert.Nil(err)
	assert.True(MustFraction(3, 4).Equal(f))
	f, err = Parse("0/7")
	assert.Nil(err)
	assert.Equal("0", f.String())
	f, err = Parse("123456789012345678901234567890/3")
	assert.Nil(err)
	assert.Equal("41152263004115226300411522630", f.String())

	for _, s := range []string{"xxx", "", "1", "1/", "/2", "1/-2", "--1/2", "- -1/2", "1.5/2", "1/2/3", "(1 / 2)", "1 2/3"} {
		_, err := Parse(s)
		assert.True(errors.Is(err, ErrInvalidFormat), s)
		assert.Contains(err.Error(), s)
	}

	_, err = Parse("1/0")
	assert.True(errors.Is(err, ErrInvalidArgument))

	p, err := ParseOptional(nil)
	assert.Nil(err)
	assert.Nil(p)
	s := "- 2/4"
	p, err = ParseOptional(&s)
	assert.Nil(err)
	assert.Equal("- (1 / 2)", p.String())
	s = "half"
	p, err = ParseOptional(&s)
	assert.True(errors.Is(err, ErrInvalidFormat))
	assert.Nil(p)
}

func TestFractionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("(3 / 4)", MustFraction(3, 4).String())
	assert.Equal("- (3 / 4)", MustFraction(-3, 4).String())
	assert.Equal("- (3 / 4)", MustFraction(3, -4).String())
	assert.Equal("(3 / 4)", MustFraction(-3, -4).String())
	assert.Equal("-2", MustFraction(-8, 4).String())
	assert.Equal("2", MustFraction(6, 3).String())
	assert.Equal("0", MustFraction(0, -5).String())

	assert.Equal("-3/4", MustFraction(3, -4).RatString())
	assert.Equal("2/1", MustFraction(4, 2).RatString())
	assert.Equal("0/1", Zero.RatString())

	for _, f := range sampleFractions() {
		back, err := Parse(f.RatString())
		assert.Nil(err)
		assert.True(f.Equal(back), f.String())
		assert.Equal(f.String(), back.String())
	}
}

func TestFractionConvert(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(0.25, MustFraction(1, 4).Float64(), 1e-16)
	assert.InDelta(-0.25, MustFraction(1, -4).Float64(), 1e-16)
	assert.InDelta(float32(1)/3, MustFraction(1, 3).Float32(), 1e-7)
	assert.Equal(-2, MustFraction(-8, 4).Int())
	assert.Equal(int64(-3), MustFraction(-7, 2).Int64())
	assert.Equal(int64(3), MustFraction(7, 2).Int64())
	assert.Equal(int64(0), MustFraction(1, -3).Int64())

	r := MustFraction(6, -8).Rat()
	assert.Equal("-3/4", r.String())
	assert.Equal("-3/4", Zero.Sub(MustFraction(3, 4)).Rat().RatString())
}
