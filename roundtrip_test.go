package floatconv_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv"
)

// corpus returns a mix of interesting and random bit patterns, NaNs and
// infinities excluded.
func corpus() []float64 {
	fs := []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		0.1,
		1.0 / 3.0,
		math.Pi,
		math.E,
		math.Sqrt2,
		1e23,
		123.456789e12,
		math.MaxFloat64,
		-math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Float64frombits(0x0000000000000001),
		math.Float64frombits(0x000FFFFFFFFFFFFF), // Largest subnormal.
		math.Float64frombits(0x0010000000000000), // Smallest normal.
		math.Float64frombits(0x7FEFFFFFFFFFFFFF), // Largest finite.
		math.Float64frombits(0x3FE0000000000002),
		math.Float64frombits(0x4340000000000001),
	}

	rng := rand.New(rand.NewSource(64))
	for len(fs) < 2000 {
		f := math.Float64frombits(rng.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		fs = append(fs, f)
	}
	return fs
}

// TestRoundTrip renders every corpus value with just enough precision and
// parses the result back, requiring the exact same bits. It also requires
// the rendered text to match the standard library's shortest form, whose
// formatting rules ours are compatible with.
func TestRoundTrip(t *testing.T) {
	dst := make([]byte, 64)

	for _, f := range corpus() {
		bits := math.Float64bits(f)

		n := floatconv.Render(dst, f, 0, floatconv.JustEnoughPrecision)
		require.NotEqual(t, 0, n, "bits %016X", bits)
		text := string(dst[:n])

		require.Equal(t, strconv.FormatFloat(f, 'g', -1, 64), text,
			"bits %016X", bits)

		back, err := floatconv.Parse(dst[:n])
		require.NoError(t, err, "bits %016X", bits)
		require.Equal(t, bits, math.Float64bits(back),
			"text %q", text)
	}
}

// TestRoundTripScientific does the same through the always-scientific
// format, which unlike the general one never needs a wide buffer.
func TestRoundTripScientific(t *testing.T) {
	options := floatconv.ExponentPresent | floatconv.JustEnoughPrecision
	dst := make([]byte, 32)

	for _, f := range corpus() {
		bits := math.Float64bits(f)

		n := floatconv.Render(dst, f, 0, options)
		require.NotEqual(t, 0, n, "bits %016X", bits)

		back, err := floatconv.Parse(dst[:n])
		require.NoError(t, err, "bits %016X", bits)
		require.Equal(t, bits, math.Float64bits(back),
			"text %q", dst[:n])
	}
}

// TestRoundTripExactPath round-trips a dense sweep of the binary64 range
// through the exact decimal path only, so that a slip there cannot hide
// behind the binary approximation path handling almost every input.
func TestRoundTripExactPath(t *testing.T) {
	var bitses []uint64

	// Every exponent, with the mantissa patterns most likely to sit next
	// to a rounding boundary.
	for exp := uint64(0); exp <= 0x7FE; exp++ {
		for _, man := range []uint64{
			0x0000000000000,
			0x0000000000001,
			0x8000000000000,
			0xFFFFFFFFFFFFF,
		} {
			bitses = append(bitses, exp<<52|man)
		}
	}

	rng := rand.New(rand.NewSource(1132))
	for i := 0; i < 50000; i++ {
		bits := rng.Uint64() &^ (1 << 63)
		if bits>>52 == 0x7FF {
			continue
		}
		bitses = append(bitses, bits)
	}

	for _, bits := range bitses {
		f := math.Float64frombits(bits)
		text := strconv.FormatFloat(f, 'g', -1, 64)

		back, err := floatconv.ParseSlowly([]byte(text))
		require.NoError(t, err, text)
		require.Equal(t, bits, math.Float64bits(back), text)

		back, err = floatconv.Parse([]byte(text))
		require.NoError(t, err, text)
		require.Equal(t, bits, math.Float64bits(back), text)
	}
}

func TestRoundTripFixed(t *testing.T) {
	// The fixed format may need one byte per decimal point position, so
	// size the buffer for the full subnormal range.
	options := floatconv.ExponentAbsent | floatconv.JustEnoughPrecision
	dst := make([]byte, 1200)

	for i, f := range []float64{
		0.1,
		-42.195,
		math.Pi,
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
	} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			n := floatconv.Render(dst, f, 0, options)
			require.NotEqual(t, 0, n)

			back, err := floatconv.Parse(dst[:n])
			require.NoError(t, err)
			require.Equal(t, math.Float64bits(f), math.Float64bits(back))
		})
	}
}
