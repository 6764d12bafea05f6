// Package bigint is the narrow arbitrary-precision integer façade that
// spec.md §9 calls for ("delegate to a big-integer library through a
// narrow façade"). No repo in the retrieved pack imports a third-party
// bignum; math/big is the idiomatic Go-ecosystem choice for this, so the
// façade wraps it rather than reimplementing it (see DESIGN.md).
package bigint

import "math/big"

// Int is an arbitrary-precision signed integer value.
type Int struct{ v big.Int }

// FromInt64 builds an Int from a machine int64.
func FromInt64(n int64) Int {
	var i Int
	i.v.SetInt64(n)
	return i
}

// FromString parses s in the given base (0 means auto-detect a 0x/0o/0b
// prefix, like strconv). Returns false if s is not a valid integer.
func FromString(s string, base int) (Int, bool) {
	var i Int
	_, ok := i.v.SetString(s, base)
	return i, ok
}

// FromBytes interprets buf as a big-endian two's complement signed integer.
func FromBytes(buf []byte) Int {
	var i Int
	if len(buf) == 0 {
		return i
	}
	neg := buf[0]&0x80 != 0
	if !neg {
		i.v.SetBytes(buf)
		return i
	}
	inv := make([]byte, len(buf))
	for j, b := range buf {
		inv[j] = ^b
	}
	var mag big.Int
	mag.SetBytes(inv)
	mag.Add(&mag, big.NewInt(1))
	i.v.Neg(&mag)
	return i
}

// ToBytes renders n as a big-endian two's complement signed integer using
// exactly size bytes; it is the caller's responsibility to pick a size
// that fits (use Bits to check first).
func (n Int) ToBytes(size int) []byte {
	out := make([]byte, size)
	if n.v.Sign() >= 0 {
		b := n.v.Bytes()
		copy(out[size-len(b):], b)
		return out
	}
	var mag big.Int
	mag.Neg(&n.v)
	mag.Sub(&mag, big.NewInt(1))
	b := mag.Bytes()
	full := make([]byte, size)
	copy(full[size-len(b):], b)
	for i := range full {
		full[i] = ^full[i]
	}
	return full
}

// Bits returns the number of bits needed to represent n in two's
// complement, matching the `fits`/`ufits` range checks in spec §7.
func (n Int) Bits() int {
	if n.v.Sign() >= 0 {
		return n.v.BitLen() + 1
	}
	var mag big.Int
	mag.Neg(&n.v)
	mag.Sub(&mag, big.NewInt(1))
	return mag.BitLen() + 1
}

func (n Int) Add(m Int) Int { var r Int; r.v.Add(&n.v, &m.v); return r }
func (n Int) Sub(m Int) Int { var r Int; r.v.Sub(&n.v, &m.v); return r }
func (n Int) Mul(m Int) Int { var r Int; r.v.Mul(&n.v, &m.v); return r }
func (n Int) Neg() Int      { var r Int; r.v.Neg(&n.v); return r }
func (n Int) Abs() Int      { var r Int; r.v.Abs(&n.v); return r }

// DivMod performs truncating division, as C and most Forth dialects do
// (quotient rounds toward zero), returning (0,0,false) on division by
// zero rather than panicking -- the caller maps that to DivisionByZero.
func (n Int) DivMod(m Int) (q, r Int, ok bool) {
	if m.v.Sign() == 0 {
		return Int{}, Int{}, false
	}
	q.v.Quo(&n.v, &m.v)
	r.v.Rem(&n.v, &m.v)
	return q, r, true
}

func (n Int) Cmp(m Int) int { return n.v.Cmp(&m.v) }
func (n Int) Sign() int     { return n.v.Sign() }
func (n Int) IsZero() bool  { return n.v.Sign() == 0 }

// Int64 returns n truncated/wrapped to an int64, and whether it fit exactly.
func (n Int) Int64() (int64, bool) {
	return n.v.Int64(), n.v.IsInt64()
}

func (n Int) String() string { return n.v.String() }
