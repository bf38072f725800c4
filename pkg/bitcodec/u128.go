package bitcodec

import (
	"fmt"
	"math/bits"
)

// Uint128 is the backing representation for 128-bit containers. It is a
// plain comparable value type; == compares both words.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 builds a Uint128 from its high and low words.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// Shl returns u shifted left by n bits. Shifts of 128 or more return zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u shifted right by n bits. Shifts of 128 or more return zero.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// And returns the bitwise AND of u and v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// AndNot returns u with the bits of v cleared.
func (u Uint128) AndNot(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi &^ v.Hi, Lo: u.Lo &^ v.Lo}
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Swap returns u with its 16-byte representation reversed.
func (u Uint128) Swap() Uint128 {
	return Uint128{Hi: bits.ReverseBytes64(u.Lo), Lo: bits.ReverseBytes64(u.Hi)}
}

// String renders u as a zero-padded hex literal.
func (u Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// Mask128 returns a Uint128 with the low width bits set.
func Mask128(width uint) Uint128 {
	switch {
	case width >= 128:
		return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	case width >= 64:
		return Uint128{Hi: Mask[uint64](width - 64), Lo: ^uint64(0)}
	default:
		return Uint128{Lo: Mask[uint64](width)}
	}
}

// Extract128 returns the width-bit field at offset in c, right-aligned.
// Fields are at most 64 bits wide, so the result fits a uint64 even when
// the span crosses the word boundary.
func Extract128(c Uint128, offset, width uint) uint64 {
	return c.Shr(offset).Lo & Mask[uint64](width)
}

// Insert128 returns c with the width-bit field at offset replaced by v,
// truncating v to width bits.
func Insert128(c Uint128, offset, width uint, v uint64) Uint128 {
	m := Mask128(width).Shl(offset)
	f := Uint128{Lo: v & Mask[uint64](width)}.Shl(offset)
	return c.AndNot(m).Or(f)
}
