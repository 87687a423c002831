package decimal_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv/decimal"
)

// digitString returns d's significant digits as ASCII.
func digitString(d *decimal.Dec) string {
	var sb strings.Builder
	for _, digit := range d.Digits[:d.NumDigits] {
		sb.WriteByte('0' + digit)
	}
	return sb.String()
}

func TestParse(t *testing.T) {
	type TC struct {
		name      string
		input     string
		digits    string
		point     int32
		negative  bool
		truncated bool
	}

	tcs := []TC{
		{
			name:  "0",
			input: "0",
		},
		{
			name:     "-0",
			input:    "-0",
			negative: true,
		},
		{
			name:   "1",
			input:  "1",
			digits: "1",
			point:  1,
		},
		{
			name:   "+4",
			input:  "+4",
			digits: "4",
			point:  1,
		},
		{
			name:     "-12.34",
			input:    "-12.34",
			digits:   "1234",
			point:    2,
			negative: true,
		},
		{
			name:   "bare leading separator",
			input:  ".5",
			digits: "5",
			point:  0,
		},
		{
			name:   "bare trailing separator",
			input:  "5.",
			digits: "5",
			point:  1,
		},
		{
			name:   "comma separator",
			input:  "1,5",
			digits: "15",
			point:  1,
		},
		{
			name:   "leading fractional zeroes",
			input:  "0.00123",
			digits: "123",
			point:  -2,
		},
		{
			name:   "trailing zeroes trimmed",
			input:  "1_0_0",
			digits: "1",
			point:  3,
		},
		{
			name:   "underscores everywhere",
			input:  "_+_1_2_._5_e_+_1_",
			digits: "125",
			point:  3,
		},
		{
			name:   "positive exponent",
			input:  "1e3",
			digits: "1",
			point:  4,
		},
		{
			name:   "negative exponent",
			input:  "1.5e-2",
			digits: "15",
			point:  -1,
		},
		{
			name:   "exponent clamped high",
			input:  "1e999999999",
			digits: "1",
			point:  decimal.PointRange + 1,
		},
		{
			name:     "exponent clamped low",
			input:    "-1e-999999999",
			digits:   "1",
			point:    -decimal.PointRange - 1,
			negative: true,
		},
		{
			name:      "long tail truncated",
			input:     "1." + strings.Repeat("9", decimal.DigitsPrecision+7),
			digits:    "1" + strings.Repeat("9", decimal.DigitsPrecision-1),
			point:     1,
			truncated: true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			err := d.Parse([]byte(tc.input))
			require.NoError(t, err)

			require.Equal(t, tc.digits, digitString(d))
			require.Equal(t, tc.point, d.DecimalPoint)
			require.Equal(t, tc.negative, d.Negative)
			require.Equal(t, tc.truncated, d.Truncated)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	type TC struct {
		name  string
		input string
	}

	tcs := []TC{
		{name: "empty", input: ""},
		{name: "bare sign", input: "+"},
		{name: "bare underscore", input: "_"},
		{name: "signed underscores", input: "-__"},
		{name: "bare separator", input: "."},
		{name: "signed separator", input: "-."},
		{name: "double separator", input: "1.2.3"},
		{name: "mixed separators", input: "1.2,3"},
		{name: "leading zero", input: "007"},
		{name: "octal-ish", input: "0644"},
		{name: "double zero", input: "00"},
		{name: "missing exponent", input: "1e"},
		{name: "underscore exponent", input: "1e_"},
		{name: "signed empty exponent", input: "1e+"},
		{name: "bare exponent", input: "e3"},
		{name: "trailing junk", input: "1x"},
		{name: "words", input: "abc"},
		{name: "embedded space", input: "1 2"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			err := d.Parse([]byte(tc.input))
			require.Error(t, err)
			require.True(t, decimal.ErrMalformedInput.Has(err))
		})
	}
}

func TestAssign(t *testing.T) {
	type TC struct {
		name     string
		x        uint64
		negative bool
		digits   string
		point    int32
	}

	tcs := []TC{
		{
			name: "0",
			x:    0,
		},
		{
			name:   "7",
			x:      7,
			digits: "7",
			point:  1,
		},
		{
			name:   "100",
			x:      100,
			digits: "1",
			point:  3,
		},
		{
			name:     "-90210",
			x:        90210,
			negative: true,
			digits:   "9021",
			point:    5,
		},
		{
			name:   "max uint64",
			x:      ^uint64(0),
			digits: "18446744073709551615",
			point:  20,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			d.Assign(tc.x, tc.negative)

			require.Equal(t, tc.digits, digitString(d))
			require.Equal(t, tc.point, d.DecimalPoint)
			require.Equal(t, tc.negative, d.Negative)
			require.False(t, d.Truncated)
		})
	}
}
