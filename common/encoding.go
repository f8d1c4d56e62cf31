package common

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
)

// MarshalMsgpack writes the reduced value as a sign byte, the numerator
// length, then the big-endian magnitudes of numerator and denominator.
func (f Fraction) MarshalMsgpack() ([]byte, error) {
	n, d := f.reduced()
	nb, db := n.Bytes(), d.Bytes()

	buf := make([]byte, 5, 5+len(nb)+len(db))
	if n.Sign() < 0 {
		buf[0] = 1
	}
	binary.BigEndian.PutUint32(buf[1:], uint32(len(nb)))
	buf = append(buf, nb...)
	return append(buf, db...), nil
}

func (f *Fraction) UnmarshalMsgpack(data []byte) error {
	if len(data) < 6 || data[0] > 1 {
		return fmt.Errorf("%w: msgpack fraction %x", ErrInvalidFormat, data)
	}
	size := binary.BigEndian.Uint32(data[1:5])
	if uint64(size) >= uint64(len(data)-5) {
		return fmt.Errorf("%w: msgpack fraction %x", ErrInvalidFormat, data)
	}
	n := new(big.Int).SetBytes(data[5 : 5+size])
	d := new(big.Int).SetBytes(data[5+size:])
	if data[0] == 1 {
		n.Neg(n)
	}
	v, err := NewFraction(n, d)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.RatString())), nil
}

func (f *Fraction) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: json fraction %s", ErrInvalidFormat, string(b))
	}
	v, err := Parse(unquoted)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
