package binary_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv/binary"
)

func TestNormalize(t *testing.T) {
	type TC struct {
		name  string
		in    binary.Bin
		out   binary.Bin
		shift uint32
	}

	tcs := []TC{
		{
			name: "zero",
			in:   binary.Bin{Mantissa: 0, Exp2: 5},
			out:  binary.Bin{Mantissa: 0, Exp2: 5},
		},
		{
			name:  "one",
			in:    binary.Bin{Mantissa: 1, Exp2: 0},
			out:   binary.Bin{Mantissa: 1 << 63, Exp2: -63},
			shift: 63,
		},
		{
			name:  "already normalized",
			in:    binary.Bin{Mantissa: 1 << 63, Exp2: 7},
			out:   binary.Bin{Mantissa: 1 << 63, Exp2: 7},
			shift: 0,
		},
		{
			name:  "ten",
			in:    binary.Bin{Mantissa: 10, Exp2: 0},
			out:   binary.Bin{Mantissa: 10 << 60, Exp2: -60},
			shift: 60,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b := tc.in
			shift := b.Normalize()
			require.Equal(t, tc.shift, shift)
			require.Equal(t, tc.out, b)
		})
	}
}

func TestFloat64(t *testing.T) {
	type TC struct {
		name string
		in   binary.Bin
		neg  bool
		want float64
	}

	tcs := []TC{
		{
			name: "one",
			in:   binary.Bin{Mantissa: 1 << 63, Exp2: -63},
			want: 1,
		},
		{
			name: "minus one",
			in:   binary.Bin{Mantissa: 1 << 63, Exp2: -63},
			neg:  true,
			want: -1,
		},
		{
			name: "three",
			in:   binary.Bin{Mantissa: 3 << 62, Exp2: -62},
			want: 3,
		},
		{
			name: "half",
			in:   binary.Bin{Mantissa: 1 << 63, Exp2: -64},
			want: 0.5,
		},
		{
			name: "overflow to infinity",
			in:   binary.Bin{Mantissa: 1 << 63, Exp2: 1000},
			want: math.Inf(+1),
		},
		{
			name: "underflow to subnormal",
			in:   binary.Bin{Mantissa: 1 << 63, Exp2: -1074 - 63},
			want: math.Float64frombits(1),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b := tc.in
			got := b.Float64(tc.neg)
			require.Equal(t, math.Float64bits(tc.want), math.Float64bits(got))
		})
	}
}

func TestMulPow10(t *testing.T) {
	type TC struct {
		name  string
		in    binary.Bin
		exp10 int32
		want  float64
	}

	// Start from an exactly representable mantissa, scale, normalize
	// and narrow. For these magnitudes the approximation error is far
	// below the rounding threshold.
	tcs := []TC{
		{
			name:  "3e2",
			in:    binary.Bin{Mantissa: 3, Exp2: 0},
			exp10: 2,
			want:  300,
		},
		{
			name:  "7e-1",
			in:    binary.Bin{Mantissa: 7, Exp2: 0},
			exp10: -1,
			want:  0.7,
		},
		{
			name:  "1e100",
			in:    binary.Bin{Mantissa: 1, Exp2: 0},
			exp10: 100,
			want:  1e100,
		},
		{
			name:  "1e-100",
			in:    binary.Bin{Mantissa: 1, Exp2: 0},
			exp10: -100,
			want:  1e-100,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b := tc.in
			b.Normalize()
			b.MulPow10(tc.exp10)
			b.Normalize()

			got := b.Float64(false)
			require.Equal(t, math.Float64bits(tc.want), math.Float64bits(got))
		})
	}
}

func TestExactPow10(t *testing.T) {
	for n := int32(0); n <= 22; n++ {
		want, err := strconv.ParseFloat(fmt.Sprintf("1e%d", n), 64)
		require.NoError(t, err)
		require.Equal(t, want, binary.ExactPow10(n))
	}
}
