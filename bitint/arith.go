// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitint

// Add performs ripple-carry addition of the operand into the receiver,
// aligned at the least-significant end; positions beyond either width
// contribute false. The receiver is rewritten with a fresh buffer of
// width max(widths)+2: the extra positions hold the final carry and a
// guard bit, so addition widens instead of overflowing.
func (u *Int) Add(v *Int) {
	n := maxInt(len(u.bits), len(v.bits)) + 1
	sum := make([]bool, n+1)
	carry := false
	for i := 0; i < n; i++ {
		a := u.bit(i)
		b := v.bit(i)
		sum[n-i] = (a != b) != carry
		carry = (a && b) || (carry && (a || b))
	}
	sum[0] = carry
	u.bits = sum
}

// Negate rewrites the receiver with the two's complement of its bit
// pattern: every bit is inverted, then a one-bit 1 is added, growing the
// receiver by Add's usual two positions. The result is only meaningful
// as a transient signed quantity inside Sub and Mul; the type itself
// stays unsigned.
func (u *Int) Negate() {
	for i := range u.bits {
		u.bits[i] = !u.bits[i]
	}
	u.Add(&Int{bits: []bool{true}})
}

// Sub subtracts the operand from the receiver by adding its two's
// complement, saturating at zero: if the operand is the larger value,
// the result is all zero bits. The complement is taken at a common
// width one above both operands, so the bit at that width's sign
// position decides whether the difference went negative. Either way the
// receiver is rewritten at width max(widths)+2, the same growth
// addition leaves.
func (u *Int) Sub(v *Int) {
	w := maxInt(len(u.bits), len(v.bits)) + 1
	t := v.Clone()
	t.padTo(w)
	t.Negate()
	u.Add(t)
	res := make([]bool, w+1)
	if !u.bit(w - 1) {
		// The difference sits below the complement's carry-out.
		for i := 0; i < w-1; i++ {
			res[len(res)-1-i] = u.bit(i)
		}
	}
	u.bits = res
}

// padTo grows the receiver to width n by prepending zeros into a fresh
// buffer. Widths at or above n are left alone.
func (u *Int) padTo(n int) {
	if len(u.bits) >= n {
		return
	}
	grown := make([]bool, n)
	copy(grown[n-len(u.bits):], u.bits)
	u.bits = grown
}

// Add returns a+b, leaving both operands unchanged.
func Add(a, b *Int) *Int {
	t := a.Clone()
	t.Add(b)
	return t
}

// Sub returns a-b saturated at zero, leaving both operands unchanged.
func Sub(a, b *Int) *Int {
	t := a.Clone()
	t.Sub(b)
	return t
}
