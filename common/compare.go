package common

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than y. The raw representation does not matter, 1/-2 < 1/3.
func (f Fraction) Cmp(y Fraction) int {
	return f.Sub(y).Sign()
}

func (f Fraction) Equal(y Fraction) bool {
	return f.Cmp(y) == 0
}

// Hash is consistent with Equal, all representations of the same value
// produce the same hash.
func (f Fraction) Hash() uint64 {
	n, d := f.reduced()
	nb, db := n.Bytes(), d.Bytes()

	var header [9]byte
	if n.Sign() < 0 {
		header[0] = 1
	}
	binary.BigEndian.PutUint64(header[1:], uint64(len(nb)))

	h := xxhash.New()
	h.Write(header[:])
	h.Write(nb)
	h.Write(db)
	return h.Sum64()
}
