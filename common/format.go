package common

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var fractionPattern = regexp.MustCompile(`^([\-+])?\s*(\d+)\s*/\s*(\d+)$`)

// Parse reads text like "3/4", "-6 / 8" or "+ 1/2". Both components are
// unsigned, a single leading sign applies to the whole value.
func Parse(s string) (Fraction, error) {
	m := fractionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	n, _ := new(big.Int).SetString(m[2], 10)
	d, _ := new(big.Int).SetString(m[3], 10)
	f, err := NewFraction(n, d)
	if err != nil {
		return Fraction{}, err
	}
	if m[1] == "-" {
		f = f.mulInt(minusOne)
	}
	return f, nil
}

// ParseOptional keeps absent fields absent, a nil s is not an error.
func ParseOptional(s *string) (*Fraction, error) {
	if s == nil {
		return nil, nil
	}
	f, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// String renders "-2", "(3 / 4)" or "- (3 / 4)".
func (f Fraction) String() string {
	sign := ""
	if f.IsNegative() {
		sign = "-"
	}
	n, d := f.reduced()
	n.Abs(n)
	if d.Cmp(one) == 0 {
		return sign + n.String()
	}
	return strings.TrimSpace(fmt.Sprintf("%s (%s / %s)", sign, n.String(), d.String()))
}

// RatString is the compact "-3/4" form, always with a denominator, that
// Parse reads back.
func (f Fraction) RatString() string {
	n, d := f.reduced()
	return n.String() + "/" + d.String()
}
