package floatconv_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv"
	"github.com/magnus-ISU/floatconv/decimal"
)

func TestParse(t *testing.T) {
	type TC struct {
		name  string
		input string
		bits  uint64
	}

	tcs := []TC{
		{
			name:  "0",
			input: "0",
			bits:  0x0000000000000000,
		},
		{
			name:  "-0",
			input: "-0",
			bits:  0x8000000000000000,
		},
		{
			name:  "1",
			input: "1",
			bits:  0x3FF0000000000000,
		},
		{
			name:  "0.1",
			input: "0.1",
			bits:  0x3FB999999999999A,
		},
		{
			name:  "underscored thirds",
			input: "0.333_333_333_333_333_31",
			bits:  0x3FD5555555555555,
		},
		{
			name:  "comma separator",
			input: "-12,5",
			bits:  0xC029000000000000,
		},
		{
			name:  "1e23",
			input: "1e23",
			bits:  0x44B52D02C7E14AF6,
		},
		{
			name:  "2^53",
			input: "9007199254740992",
			bits:  0x4340000000000000,
		},
		{
			name:  "2^53 + 1 ties to even",
			input: "9007199254740993",
			bits:  0x4340000000000000,
		},
		{
			name:  "max finite",
			input: "1.7976931348623157e308",
			bits:  0x7FEFFFFFFFFFFFFF,
		},
		{
			name:  "just past max finite",
			input: "1.7976931348623159e308",
			bits:  0x7FF0000000000000,
		},
		{
			name:  "overflow to infinity",
			input: "1e309",
			bits:  0x7FF0000000000000,
		},
		{
			name:  "-1e999",
			input: "-1e999",
			bits:  0xFFF0000000000000,
		},
		{
			name:  "min normal",
			input: "2.2250738585072014e-308",
			bits:  0x0010000000000000,
		},
		{
			name:  "php hang value",
			input: "2.2250738585072011e-308",
			bits:  0x000FFFFFFFFFFFFF,
		},
		{
			name:  "odd mantissa near min normal",
			input: "4.524421010028037e-308",
			bits:  0x0020445CCF85CD59,
		},
		{
			name:  "min subnormal",
			input: "5e-324",
			bits:  0x0000000000000001,
		},
		{
			name:  "3e-324 rounds to min subnormal",
			input: "3e-324",
			bits:  0x0000000000000001,
		},
		{
			name:  "1e-325 underflows to zero",
			input: "1e-325",
			bits:  0x0000000000000000,
		},
		{
			name:  "-1e-999 underflows to negative zero",
			input: "-1e-999",
			bits:  0x8000000000000000,
		},
		{
			name:  "halfway long fraction ties to even",
			input: "0.500000000000000166533453693773481063544750213623046875",
			bits:  0x3FE0000000000002,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f, err := floatconv.Parse([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.bits, math.Float64bits(f))

			// The exact decimal path must agree with the binary
			// approximation path.
			f, err = floatconv.ParseSlowly([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.bits, math.Float64bits(f))
		})
	}
}

func TestParseSpecialValues(t *testing.T) {
	type TC struct {
		name  string
		input string
		bits  uint64
	}

	tcs := []TC{
		{name: "inf", input: "inf", bits: 0x7FF0000000000000},
		{name: "Inf", input: "Inf", bits: 0x7FF0000000000000},
		{name: "INFINITY", input: "INFINITY", bits: 0x7FF0000000000000},
		{name: "+infinity", input: "+infinity", bits: 0x7FF0000000000000},
		{name: "-inf", input: "-inf", bits: 0xFFF0000000000000},
		{name: "-Infinity", input: "-Infinity", bits: 0xFFF0000000000000},
		{name: "padded", input: "__-__inf__", bits: 0xFFF0000000000000},
		{name: "nan", input: "nan", bits: 0x7FFFFFFFFFFFFFFF},
		{name: "NaN", input: "NaN", bits: 0x7FFFFFFFFFFFFFFF},
		{name: "-NAN", input: "-NAN", bits: 0xFFFFFFFFFFFFFFFF},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f, err := floatconv.Parse([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.bits, math.Float64bits(f))
		})
	}
}

func TestParseMalformed(t *testing.T) {
	type TC struct {
		name  string
		input string
		mark  error
	}

	tcs := []TC{
		{name: "empty", input: "", mark: oops.New("unexpected")},
		{name: "bare sign", input: "+", mark: oops.New("unexpected")},
		{name: "bare underscores", input: "__", mark: oops.New("unexpected")},
		{name: "double separator", input: "1.2.3", mark: oops.New("unexpected")},
		{name: "leading zero", input: "007", mark: oops.New("unexpected")},
		{name: "missing exponent", input: "1e", mark: oops.New("unexpected")},
		{name: "inf with junk", input: "infx", mark: oops.New("unexpected")},
		{name: "truncated infinity", input: "infinit", mark: oops.New("unexpected")},
		{name: "infinity with junk", input: "infinity7", mark: oops.New("unexpected")},
		{name: "nan with junk", input: "nan0", mark: oops.New("unexpected")},
		{name: "double sign", input: "--inf", mark: oops.New("unexpected")},
		{name: "spaced", input: " inf", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, err := floatconv.Parse([]byte(tc.input))
			require.Error(t, err, tc.mark)

			// The grammar tags must survive the wrapping on the way
			// out of Parse.
			require.True(t, decimal.ErrMalformedInput.Has(err), tc.mark)
			require.True(t, decimal.Error.Has(err), tc.mark)
			require.True(t, floatconv.Error.Has(err), tc.mark)
		})
	}
}

// TestParseAgainstStrconv cross-checks both the binary approximation path
// and the exact decimal path against the standard library, over inputs
// that both grammars accept.
func TestParseAgainstStrconv(t *testing.T) {
	inputs := []string{
		"0",
		"-0",
		"0.000001",
		"1",
		"299792458",
		"3.14159265358979323846264338327950288419716939937510582097494459",
		"123.456e78",
		"123.456e-78",
		"9007199254740993",
		"9223372036854775807",
		"18446744073709551616",
		"0.1",
		"0.2",
		"0.3",
		"1e23",
		"8.442911973260991e-309",
		"4.9406564584124654e-324",
		"2.4703282292062327e-324",
		"2.4703282292062329e-324",
		"1.7976931348623158e308",
		"35184372088831999999999999999999",
		"0.500000000000000166533453693773481063544750213623046875",
		"1090544144181609348835077142190",
	}

	rng := rand.New(rand.NewSource(327))
	for i := 0; i < 20000; i++ {
		f := math.Float64frombits(rng.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		inputs = append(inputs, strconv.FormatFloat(f, 'g', -1, 64))
	}

	for _, input := range inputs {
		want, err := strconv.ParseFloat(input, 64)
		require.NoError(t, err, input)

		f, err := floatconv.Parse([]byte(input))
		require.NoError(t, err, input)
		require.Equal(t, math.Float64bits(want), math.Float64bits(f), input)

		f, err = floatconv.ParseSlowly([]byte(input))
		require.NoError(t, err, input)
		require.Equal(t, math.Float64bits(want), math.Float64bits(f), input)
	}
}

func BenchmarkParse(b *testing.B) {
	input := []byte("123.456789e12")
	for n := 0; n < b.N; n++ {
		_, err := floatconv.Parse(input)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkParseSlowly(b *testing.B) {
	input := []byte("123.456789e12")
	for n := 0; n < b.N; n++ {
		_, err := floatconv.ParseSlowly(input)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
