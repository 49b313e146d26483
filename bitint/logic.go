// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitint

// And combines the operand into the receiver bit by bit, aligned at the
// least-significant end. Receiver bits beyond the operand's width AND
// against implicit zeros and are therefore set to false.
func (u *Int) And(v *Int) {
	n := minInt(len(u.bits), len(v.bits))
	for i := 0; i < n; i++ {
		u.bits[len(u.bits)-1-i] = u.bits[len(u.bits)-1-i] && v.bits[len(v.bits)-1-i]
	}
	for i := n; i < len(u.bits); i++ {
		u.bits[len(u.bits)-1-i] = false
	}
}

// Or combines the operand into the receiver bit by bit, aligned at the
// least-significant end. Receiver bits beyond the operand's width are
// left unchanged, which matches OR against implicit zeros.
func (u *Int) Or(v *Int) {
	n := minInt(len(u.bits), len(v.bits))
	for i := 0; i < n; i++ {
		u.bits[len(u.bits)-1-i] = u.bits[len(u.bits)-1-i] || v.bits[len(v.bits)-1-i]
	}
}

// Xor combines the operand into the receiver bit by bit, aligned at the
// least-significant end. Like Or, receiver bits beyond the operand's
// width are left unchanged.
func (u *Int) Xor(v *Int) {
	n := minInt(len(u.bits), len(v.bits))
	for i := 0; i < n; i++ {
		u.bits[len(u.bits)-1-i] = u.bits[len(u.bits)-1-i] != v.bits[len(v.bits)-1-i]
	}
}

// And returns a AND b, leaving both operands unchanged.
func And(a, b *Int) *Int {
	t := a.Clone()
	t.And(b)
	return t
}

// Or returns a OR b, leaving both operands unchanged.
func Or(a, b *Int) *Int {
	t := a.Clone()
	t.Or(b)
	return t
}

// Xor returns a XOR b, leaving both operands unchanged.
func Xor(a, b *Int) *Int {
	t := a.Clone()
	t.Xor(b)
	return t
}
