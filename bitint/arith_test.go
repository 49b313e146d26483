// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVectors(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 9},
		{1, 1},
		{1023, 1},
		{999999, 1000001},
		{1 << 40, 1 << 40},
	}
	for _, c := range cases {
		x := MustNew(c.a)
		y := MustNew(c.b)
		wantLen := maxInt(x.Len(), y.Len()) + 2
		x.Add(y)
		assert.Equal(t, c.a+c.b, x.ToInt())
		assert.Equal(t, wantLen, x.Len())
	}
}

func TestAddLoop(t *testing.T) {
	for a := int64(1); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			require.Equal(t, a+b, Add(MustNew(a), MustNew(b)).ToInt())
		}
	}
}

func TestNegate(t *testing.T) {
	// 5 is 0b0101; inverted 0b1010, plus one 0b1011, grown by Add's two
	// extra positions.
	x := MustNew(5)
	x.Negate()
	assert.Equal(t, "0b001011", x.String())
	assert.Equal(t, int64(11), x.ToInt())
}

func TestSubSaturates(t *testing.T) {
	x := MustNew(4)
	x.Sub(MustNew(9))
	assert.Equal(t, int64(0), x.ToInt())
	assert.NotContains(t, x.String(), "1")

	// Saturation still grows the receiver the way addition does.
	assert.Equal(t, 7, x.Len())
}

func TestSubExact(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{9, 4, 5},
		{100, 1, 99},
		{16, 16, 0},
		{1 << 40, 1 << 20, 1<<40 - 1<<20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sub(MustNew(c.a), MustNew(c.b)).ToInt())
	}
}

func TestSubLoop(t *testing.T) {
	for a := int64(1); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			want := a - b
			if want < 0 {
				want = 0
			}
			require.Equal(t, want, Sub(MustNew(a), MustNew(b)).ToInt())
		}
	}
}

func TestSubGrowth(t *testing.T) {
	// Sub rewrites the receiver at max(widths)+2, the same growth Add
	// leaves, whether or not it saturates.
	cases := []struct{ a, b int64 }{
		{9, 4},
		{4, 9},
		{16, 16},
		{1 << 40, 1 << 20},
	}
	for _, c := range cases {
		x := MustNew(c.a)
		y := MustNew(c.b)
		wantLen := maxInt(x.Len(), y.Len()) + 2
		x.Sub(y)
		assert.Equal(t, wantLen, x.Len(), "%v - %v", c.a, c.b)
	}
}

func TestSaturatedValueStaysUsable(t *testing.T) {
	z := Sub(MustNew(4), MustNew(9))
	require.Equal(t, int64(0), z.ToInt())

	assert.Equal(t, int64(5), Add(z, MustNew(5)).ToInt())
	assert.Equal(t, int64(5), Sub(MustNew(5), z).ToInt())
	assert.Equal(t, int64(0), Sub(z, z).ToInt())
	assert.True(t, strings.HasPrefix(z.String(), "0b0"))
}

func BenchmarkAdd(b *testing.B) {
	x := MustNew(987654321)
	y := MustNew(123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	x := MustNew(987654321)
	y := MustNew(123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Mul(x, y)
	}
}
