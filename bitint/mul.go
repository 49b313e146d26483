// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitint

// Mul multiplies the receiver by the operand using Booth's algorithm and
// rewrites the receiver with the product at width lenReceiver+lenOperand.
//
// Booth's recurrence works on signed two's-complement registers, so both
// unsigned operands first get one leading zero guard bit; without it the
// top bit of either pattern would be misread as a sign. Three registers
// share one working width: A holds the guarded multiplicand at the top,
// S its two's complement, and P accumulates, starting as the guarded
// multiplier with one extra low bit for the Booth test. Each round
// inspects P's two lowest bits, adds A on a 01 pair, adds S on a 10
// pair, and arithmetic-right-shifts P.
func (u *Int) Mul(v *Int) {
	n := len(u.bits) + len(v.bits)

	mc := padFront(u.bits)
	mp := padFront(v.bits)
	w := len(mc) + len(mp) + 1

	a := make([]bool, w)
	copy(a, mc)
	s := negated(a)

	p := make([]bool, w+1)
	copy(p[w-len(mp):w], mp)

	// One round per multiplier bit, guard included; the final round
	// consumes the transition out of the multiplier's top bit.
	for i := 0; i < len(mp); i++ {
		bit1 := p[len(p)-2]
		bit2 := p[len(p)-1]
		switch {
		case bit1 == bit2:
		case bit2:
			addInto(p[:w], a)
		default:
			addInto(p[:w], s)
		}
		rtShift(p)
	}

	// The product sits below the two sign positions; its low guard bits
	// have been shifted out.
	out := make([]bool, n)
	copy(out, p[2:2+n])
	u.bits = out
}

// Mul returns a*b, leaving both operands unchanged.
func Mul(a, b *Int) *Int {
	t := a.Clone()
	t.Mul(b)
	return t
}

// padFront copies bits into a buffer one longer, prepending a zero.
func padFront(bits []bool) []bool {
	grown := make([]bool, len(bits)+1)
	copy(grown[1:], bits)
	return grown
}

// addInto ripples src into dst at fixed width, both MSB first and equal
// length; carry out of the top position is discarded, which is the
// wrap-around the signed registers rely on.
func addInto(dst, src []bool) {
	carry := false
	for i := len(dst) - 1; i >= 0; i-- {
		a := dst[i]
		b := src[i]
		dst[i] = (a != b) != carry
		carry = (a && b) || (carry && (a || b))
	}
}

// negated returns the two's complement of a at the same width, folding
// the invert and the add-one into one ripple.
func negated(a []bool) []bool {
	s := make([]bool, len(a))
	carry := true
	for i := len(a) - 1; i >= 0; i-- {
		b := !a[i]
		s[i] = b != carry
		carry = b && carry
	}
	return s
}

// rtShift shifts p one position toward the least-significant end: the
// low bit is dropped and the sign bit is replicated into the vacated top
// position. The replication is what makes the shift arithmetic; dropping
// it corrupts any product that passes through a negative intermediate.
func rtShift(p []bool) {
	copy(p[1:], p[:len(p)-1])
}
