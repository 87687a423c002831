package decimal_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv/decimal"
)

func TestRoundNearest(t *testing.T) {
	type TC struct {
		name   string
		input  string
		n      int32
		digits string
		point  int32
	}

	tcs := []TC{
		{
			name:   "no-op when short enough",
			input:  "1.5",
			n:      5,
			digits: "15",
			point:  1,
		},
		{
			name:   "round down",
			input:  "1.23",
			n:      2,
			digits: "12",
			point:  1,
		},
		{
			name:   "round up",
			input:  "1.27",
			n:      2,
			digits: "13",
			point:  1,
		},
		{
			name:   "tie to even, down",
			input:  "1.25",
			n:      2,
			digits: "12",
			point:  1,
		},
		{
			name:   "tie to even, up",
			input:  "1.35",
			n:      2,
			digits: "14",
			point:  1,
		},
		{
			name:   "not a tie, trailing digits",
			input:  "1.2500001",
			n:      2,
			digits: "13",
			point:  1,
		},
		{
			name:   "all nines carry",
			input:  "9.99",
			n:      2,
			digits: "1",
			point:  2,
		},
		{
			name:   "round to zero digits",
			input:  "0.4",
			n:      0,
			digits: "",
			point:  0,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			err := d.Parse([]byte(tc.input))
			require.NoError(t, err)

			d.RoundNearest(tc.n)

			require.Equal(t, tc.digits, digitString(d))
			require.Equal(t, tc.point, d.DecimalPoint)
		})
	}
}

func TestRoundNearestTruncatedTie(t *testing.T) {
	// A truncated number is strictly greater than its digits, so what
	// looks like a tie is not one and must round up.
	d := &decimal.Dec{}
	require.NoError(t, d.Parse([]byte("1.25")))
	d.Truncated = true

	d.RoundNearest(2)

	require.Equal(t, "13", digitString(d))
	require.Equal(t, int32(1), d.DecimalPoint)
}

func TestRoundedInteger(t *testing.T) {
	type TC struct {
		name  string
		input string
		want  uint64
	}

	tcs := []TC{
		{name: "0", input: "0", want: 0},
		{name: "0.5 ties to even", input: "0.5", want: 0},
		{name: "1.5 ties to even", input: "1.5", want: 2},
		{name: "2.5 ties to even", input: "2.5", want: 2},
		{name: "3.5 ties to even", input: "3.5", want: 4},
		{name: "tiny", input: "0.001", want: 0},
		{name: "123.456", input: "123.456", want: 123},
		{name: "sign ignored", input: "-8.6", want: 9},
		{name: "padded with implicit zeroes", input: "45e8", want: 4500000000},
		{name: "18 digits", input: "576460752303423488", want: 576460752303423488},
		{name: "19 digits overflow", input: "9223372036854775808", want: math.MaxUint64},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			err := d.Parse([]byte(tc.input))
			require.NoError(t, err)

			require.Equal(t, tc.want, d.RoundedInteger())
		})
	}
}

func TestRoundJustEnough(t *testing.T) {
	type TC struct {
		name   string
		x      float64
		digits string
		point  int32
	}

	// exp2 and mantissa below are derived from the bit representation
	// the same way the renderer derives them.
	tcs := []TC{
		{
			name:   "0.1 needs one digit",
			x:      0.1,
			digits: "1",
			point:  0,
		},
		{
			name:   "0.3 needs one digit",
			x:      0.3,
			digits: "3",
			point:  0,
		},
		{
			name:   "1/3 needs sixteen digits",
			x:      1.0 / 3.0,
			digits: "3333333333333333",
			point:  0,
		},
		{
			name:   "pi",
			x:      math.Pi,
			digits: "3141592653589793",
			point:  1,
		},
		{
			name:   "smallest subnormal",
			x:      math.Float64frombits(1),
			digits: "5",
			point:  -323,
		},
		{
			name:   "max finite",
			x:      math.MaxFloat64,
			digits: "17976931348623157",
			point:  309,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			bits := math.Float64bits(tc.x)
			exp2 := int32(bits>>52) & 0x7FF
			man := bits & 0x000FFFFFFFFFFFFF
			if exp2 == 0 {
				exp2 = -1022
			} else {
				exp2 -= 1023
				man |= 0x0010000000000000
			}

			d := &decimal.Dec{}
			d.Assign(man, false)
			if d.NumDigits > 0 {
				d.Shift(exp2 - 52)
			}

			d.RoundJustEnough(exp2, man)

			require.Equal(t, tc.digits, digitString(d), spew.Sdump(d))
			require.Equal(t, tc.point, d.DecimalPoint)
		})
	}
}
