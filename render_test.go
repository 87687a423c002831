package floatconv_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv"
)

func TestRender(t *testing.T) {
	type TC struct {
		name      string
		x         float64
		precision uint32
		options   floatconv.Options
		want      string
	}

	tcs := []TC{
		{
			name:    "nan",
			x:       math.NaN(),
			want:    "NaN",
			options: floatconv.ExponentAbsent,
		},
		{
			name:    "positive infinity",
			x:       math.Inf(+1),
			want:    "Inf",
			options: floatconv.ExponentAbsent,
		},
		{
			name:    "positive infinity with plus sign",
			x:       math.Inf(+1),
			options: floatconv.ExponentAbsent | floatconv.LeadingPlusSign,
			want:    "+Inf",
		},
		{
			name:    "negative infinity",
			x:       math.Inf(-1),
			want:    "-Inf",
			options: floatconv.ExponentAbsent,
		},
		{
			name:    "zero fixed",
			x:       0,
			options: floatconv.ExponentAbsent,
			want:    "0",
		},
		{
			name:      "zero fixed with precision",
			x:         0,
			precision: 3,
			options:   floatconv.ExponentAbsent,
			want:      "0.000",
		},
		{
			name:    "negative zero just enough",
			x:       math.Copysign(0, -1),
			options: floatconv.ExponentAbsent | floatconv.JustEnoughPrecision,
			want:    "-0",
		},
		{
			name:      "fixed rounds",
			x:         123.456,
			precision: 2,
			options:   floatconv.ExponentAbsent,
			want:      "123.46",
		},
		{
			name:      "fixed rounds with comma",
			x:         123.456,
			precision: 2,
			options:   floatconv.ExponentAbsent | floatconv.DecimalSeparatorIsAComma,
			want:      "123,46",
		},
		{
			name:      "fixed pads fraction",
			x:         0.25,
			precision: 4,
			options:   floatconv.ExponentAbsent,
			want:      "0.2500",
		},
		{
			name:      "fixed pads integral zeroes",
			x:         1e6,
			precision: 0,
			options:   floatconv.ExponentAbsent,
			want:      "1000000",
		},
		{
			name:      "fixed small value",
			x:         0.00123,
			precision: 5,
			options:   floatconv.ExponentAbsent,
			want:      "0.00123",
		},
		{
			name:    "fixed just enough",
			x:       0.1,
			options: floatconv.ExponentAbsent | floatconv.JustEnoughPrecision,
			want:    "0.1",
		},
		{
			name:      "fixed with plus sign",
			x:         7.5,
			precision: 1,
			options:   floatconv.ExponentAbsent | floatconv.LeadingPlusSign,
			want:      "+7.5",
		},
		{
			name:      "scientific",
			x:         12345.6789,
			precision: 3,
			options:   floatconv.ExponentPresent,
			want:      "1.235e+04",
		},
		{
			name:      "scientific zero precision",
			x:         12345.6789,
			precision: 0,
			options:   floatconv.ExponentPresent,
			want:      "1e+04",
		},
		{
			name:    "scientific just enough",
			x:       0.1,
			options: floatconv.ExponentPresent | floatconv.JustEnoughPrecision,
			want:    "1e-01",
		},
		{
			name:    "scientific just enough negative",
			x:       -12.5,
			options: floatconv.ExponentPresent | floatconv.JustEnoughPrecision,
			want:    "-1.25e+01",
		},
		{
			name:    "scientific three digit exponent",
			x:       1e300,
			options: floatconv.ExponentPresent | floatconv.JustEnoughPrecision,
			want:    "1e+300",
		},
		{
			name:      "scientific pads fraction",
			x:         2,
			precision: 3,
			options:   floatconv.ExponentPresent,
			want:      "2.000e+00",
		},
		{
			name:    "general prefers fixed",
			x:       100000,
			options: floatconv.JustEnoughPrecision,
			want:    "100000",
		},
		{
			name:    "general prefers scientific",
			x:       1000000,
			options: floatconv.JustEnoughPrecision,
			want:    "1e+06",
		},
		{
			name:    "general small exponent",
			x:       0.0001,
			options: floatconv.JustEnoughPrecision,
			want:    "0.0001",
		},
		{
			name:    "general smaller exponent",
			x:       0.00001,
			options: floatconv.JustEnoughPrecision,
			want:    "1e-05",
		},
		{
			name:      "general significant digits",
			x:         0.00001234,
			precision: 2,
			want:      "1.2e-05",
		},
		{
			name:      "general rounds significant digits",
			x:         123.456,
			precision: 4,
			want:      "123.5",
		},
		{
			name:    "general subnormal",
			x:       math.Float64frombits(1),
			options: floatconv.JustEnoughPrecision,
			want:    "5e-324",
		},
		{
			name:    "general max finite",
			x:       math.MaxFloat64,
			options: floatconv.JustEnoughPrecision,
			want:    "1.7976931348623157e+308",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			dst := make([]byte, 64)
			n := floatconv.Render(dst, tc.x, tc.precision, tc.options)
			require.Equal(t, len(tc.want), n)
			require.Equal(t, tc.want, string(dst[:n]))
		})
	}
}

func TestRenderAlignRight(t *testing.T) {
	dst := []byte("xxxxxxxx")
	n := floatconv.Render(dst, 123.456, 2, floatconv.ExponentAbsent|floatconv.AlignRight)
	require.Equal(t, 6, n)
	require.Equal(t, "xx123.46", string(dst))
}

func TestRenderInsufficientBuffer(t *testing.T) {
	type TC struct {
		name      string
		x         float64
		precision uint32
		options   floatconv.Options
		size      int
	}

	tcs := []TC{
		{
			name:      "fixed",
			x:         123.456,
			precision: 2,
			options:   floatconv.ExponentAbsent,
			size:      3,
		},
		{
			name:      "scientific",
			x:         123.456,
			precision: 2,
			options:   floatconv.ExponentPresent,
			size:      7,
		},
		{
			name:    "nan",
			x:       math.NaN(),
			options: floatconv.ExponentAbsent,
			size:    2,
		},
		{
			name:    "negative infinity",
			x:       math.Inf(-1),
			options: floatconv.ExponentAbsent,
			size:    3,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			dst := make([]byte, tc.size)
			for i := range dst {
				dst[i] = 'x'
			}

			n := floatconv.Render(dst, tc.x, tc.precision, tc.options)
			require.Equal(t, 0, n)

			// dst must not have been modified.
			for _, c := range dst {
				require.Equal(t, byte('x'), c)
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	dst := make([]byte, 64)
	for n := 0; n < b.N; n++ {
		if floatconv.Render(dst, 123.456789e12, 0, floatconv.JustEnoughPrecision) == 0 {
			b.Fatal("insufficient buffer")
		}
	}
}
