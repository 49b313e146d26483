// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitint implements an arbitrary-width unsigned integer backed by
// an explicit bit slice, most-significant bit first. Values are created
// from a positive machine integer and grow as needed under addition and
// multiplication; leading zero bits are preserved, never trimmed.
//
// Every operation comes in two forms: a mutating method on *Int that
// rewrites the receiver in place, and a pure package function that clones
// its first operand and returns the result, leaving both inputs unchanged.
//
// A mutating method must not be invoked concurrently on the same receiver;
// the package performs no internal locking. Clones share no storage with
// their source.
package bitint

import (
	"errors"
	"math/bits"
	"strings"
)

var (
	// ErrNonPositive is returned when constructing from a value <= 0.
	ErrNonPositive = errors.New("ErrNonPositive")
	// ErrOverflow is returned by ToIntChecked when the value does not fit
	// a non-negative int64.
	ErrOverflow = errors.New("ErrOverflow")
)

// Int is a bit-array unsigned integer. Index 0 of the slice is the most
// significant bit, the last index the least significant. The width of a
// value is exactly len of its slice; operations align operands at the
// least-significant end regardless of their widths.
type Int struct {
	bits []bool
}

// New constructs an Int from a positive machine integer. The width is
// ceil(log2(i))+1 bits, so every value except an exact power of two
// carries one leading zero.
func New(i int64) (*Int, error) {
	if i <= 0 {
		return nil, ErrNonPositive
	}
	n := bits.Len64(uint64(i))
	if i&(i-1) != 0 {
		n++
	}
	b := make([]bool, n)
	for pos := n - 1; pos >= 0; pos-- {
		b[pos] = i%2 == 1
		i >>= 1
	}
	return &Int{bits: b}, nil
}

// MustNew is New that panics on invalid input. Intended for tests and
// literal values.
func MustNew(i int64) *Int {
	u, err := New(i)
	if err != nil {
		panic(err)
	}
	return u
}

// Clone returns an independent copy. Mutating the copy never changes the
// source.
func (u *Int) Clone() *Int {
	b := make([]bool, len(u.bits))
	copy(b, u.bits)
	return &Int{bits: b}
}

// Len returns the current width in bits.
func (u *Int) Len() int {
	return len(u.bits)
}

// bit reads the bit at LSB-indexed position i; positions beyond the
// stored width read as false.
func (u *Int) bit(i int) bool {
	if i >= len(u.bits) {
		return false
	}
	return u.bits[len(u.bits)-1-i]
}

// ToInt reconstructs the value as a machine integer by accumulating bits
// from the most significant end. The accumulator is unsigned so the
// trailing shift that undoes the loop's final doubling cannot smear a
// sign bit; values wider than int64 silently wrap per fixed-width shift
// rules. Use ToIntChecked when that matters.
func (u *Int) ToInt() int64 {
	var t uint64
	for _, b := range u.bits {
		if b {
			t++
		}
		t <<= 1
	}
	return int64(t >> 1)
}

// ToIntChecked is ToInt with an explicit width check: it fails with
// ErrOverflow if any bit at or above the int64 sign position is set.
func (u *Int) ToIntChecked() (int64, error) {
	for i, b := range u.bits {
		if b && len(u.bits)-1-i >= 63 {
			return 0, ErrOverflow
		}
	}
	return u.ToInt(), nil
}

// String renders the value as "0b" followed by every stored bit, most
// significant first. Leading zeros are not trimmed.
func (u *Int) String() string {
	var sb strings.Builder
	sb.Grow(len(u.bits) + 2)
	sb.WriteString("0b")
	for _, b := range u.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
