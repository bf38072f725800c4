// Package bitcodec provides the bit-level primitives used by code emitted
// with bitfieldgen: field extraction and insertion, two's-complement sign
// extension, width masks, and a 128-bit container type. The generator itself
// uses the same functions to range-check literal defaults, so generated code
// and generation-time validation share one set of semantics.
//
// All functions are pure and allocation-free. A "field" is a width-bit span
// starting at a bit offset, where offset counts from bit 0 (the least
// significant bit) of the container.
package bitcodec

import (
	"golang.org/x/exp/constraints"
)

// Mask returns a value with the low width bits set. A width of zero returns
// zero; a width at or above the bit size of T returns all ones.
func Mask[T constraints.Unsigned](width uint) T {
	return (T(1) << width) - T(1)
}

// Extract returns the width-bit field at offset in c, right-aligned.
func Extract[T constraints.Unsigned](c T, offset, width uint) T {
	return (c >> offset) & Mask[T](width)
}

// Insert returns c with the width-bit field at offset replaced by v. Bits of
// v above width are discarded; this is the silent-truncation setter contract.
func Insert[T constraints.Unsigned](c T, offset, width uint, v T) T {
	m := Mask[T](width)
	return (c &^ (m << offset)) | ((v & m) << offset)
}

// SignExtend replicates the sign bit of a width-bit value into the high bits
// of T, producing the two's-complement pattern of the value at T's full
// width. Values whose sign bit is clear are returned unchanged, as are
// values when width is zero or at least the bit size of T.
func SignExtend[T constraints.Unsigned](v T, width uint) T {
	if width == 0 {
		return v
	}
	sign := T(1) << (width - 1)
	if v&sign == 0 {
		return v
	}
	return v | ^Mask[T](width)
}

// FitsUnsigned reports whether v is representable in width bits.
func FitsUnsigned[T constraints.Unsigned](v T, width uint) bool {
	return v <= Mask[T](width)
}

// Swap reverses the bytes of the width-bit representation of v. Width is
// taken in whole bytes; swapping an 8-bit value is the identity.
func Swap[T constraints.Unsigned](v T, width uint) T {
	var r T
	for i := uint(0); i < width; i += 8 {
		r = r<<8 | (v>>i)&0xFF
	}
	return r
}

// FitsSigned reports whether v is representable as a width-bit
// two's-complement value, i.e. -2^(width-1) <= v <= 2^(width-1)-1.
func FitsSigned(v int64, width uint) bool {
	if width == 0 {
		return false
	}
	if width >= 64 {
		return true
	}
	min := -(int64(1) << (width - 1))
	max := int64(1)<<(width-1) - 1
	return v >= min && v <= max
}
