package floatconv

import (
	"math"

	"github.com/magnus-ISU/floatconv/binary"
	"github.com/magnus-ISU/floatconv/decimal"
)

// decimalToBinaryShifts converts decimal powers of 10 to binary powers of
// 2: shifting a number right by decimalToBinaryShifts[n] cannot consume
// more than n decimal digits of magnitude. For example, (10000 >> 13) is
// 1. The table stops before its elements would exceed decimal.MaxShift.
var decimalToBinaryShifts = [19]uint32{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29,
	33, 36, 39, 43, 46, 49, 53, 56, 59,
}

// Parse converts the decimal literal s to the nearest representable
// float64, rounding to nearest with ties to even. The accepted grammar is
// the one documented on decimal.Dec.Parse, plus the special values "inf",
// "infinity" and "nan" (case-insensitive, optionally signed, optionally
// padded with underscores). Anything else returns an error tagged
// decimal.ErrMalformedInput.
func Parse(s []byte) (_ float64, err error) {
	defer Error.WrapP(&err)
	return parse(s, false)
}

// parse is Parse with a hook to skip the binary fast path, so that tests
// can drive the exact decimal slow path over inputs the fast path would
// otherwise resolve.
func parse(s []byte, skipFastPath bool) (float64, error) {
	var h decimal.Dec
	if err := h.Parse(s); err != nil {
		if f, ok := parseSpecial(s); ok {
			return f, nil
		}
		return 0, err
	}

	// Zero and the obvious extremes. The largest and smallest positive
	// finite float64 values are approximately 1.8e+308 and 4.9e-324.
	if h.NumDigits == 0 || h.DecimalPoint < binary.MinExp10 {
		return packZero(h.Negative), nil
	} else if h.DecimalPoint > binary.MaxExp10 {
		return packInf(h.Negative), nil
	}

	if !skipFastPath {
		if f, ok := binParse(&h); ok {
			return f, nil
		}
	}

	// The exact slow path: scale by powers of 2 until the value lies in
	// [½ .. 1], which determines the base-2 exponent. First shift
	// right, possibly a little too far, ending certainly below 1 and
	// possibly below ½...
	const f64Bias = -1023
	exp2 := int32(0)
	for h.DecimalPoint > 0 {
		n := uint32(h.DecimalPoint)
		shift := uint32(decimal.MaxShift)
		if n < uint32(len(decimalToBinaryShifts)) {
			shift = decimalToBinaryShifts[n]
		}
		h.Shift(-int32(shift))
		if h.DecimalPoint < -decimal.PointRange {
			return packZero(h.Negative), nil
		}
		exp2 += int32(shift)
	}
	// ...then shift left into [½ .. 1].
	for h.DecimalPoint <= 0 {
		var shift uint32
		if h.DecimalPoint == 0 {
			if h.Digits[0] >= 5 {
				break
			}
			if h.Digits[0] <= 2 {
				shift = 2
			} else {
				shift = 1
			}
		} else {
			n := uint32(-h.DecimalPoint)
			shift = uint32(decimal.MaxShift)
			if n < uint32(len(decimalToBinaryShifts)) {
				shift = decimalToBinaryShifts[n]
			}
		}
		h.Shift(+int32(shift))
		if h.DecimalPoint > +decimal.PointRange {
			return packInf(h.Negative), nil
		}
		exp2 -= int32(shift)
	}

	// The shift by 2 above overshoots into [1 .. 1.2) when the value
	// was at or above ¼. Halve back into [½ .. 1), so that narrowing to
	// 53 bits below rounds exactly once; halving a 54-bit integer after
	// the fact would truncate a rounding bit instead.
	if h.DecimalPoint == 1 {
		h.Shift(-1)
		exp2++
	}

	// The value is in [½ .. 1] but float64 mantissas live in [1 .. 2].
	exp2--

	// The minimum normal exponent is (f64Bias + 1); shift subnormals
	// down to it.
	for exp2 < f64Bias+1 {
		n := uint32(f64Bias + 1 - exp2)
		if n > decimal.MaxShift {
			n = decimal.MaxShift
		}
		h.Shift(-int32(n))
		exp2 += int32(n)
	}

	if exp2-f64Bias >= 0x07FF {
		return packInf(h.Negative), nil
	}

	// Extract the 53 mantissa bits.
	h.Shift(53)
	man2 := h.RoundedInteger()

	// Rounding might have carried out an extra bit. If so, shift and
	// re-check overflow.
	if man2>>53 != 0 {
		man2 >>= 1
		exp2++
		if exp2-f64Bias >= 0x07FF {
			return packInf(h.Negative), nil
		}
	}

	// Subnormals have no implicit bit 52 and the minimum exponent.
	if man2>>52 == 0 {
		exp2 = f64Bias
	}

	exp2Bits := uint64(exp2-f64Bias) & 0x07FF
	b64 := (man2 & 0x000FFFFFFFFFFFFF) | (exp2Bits << 52)
	if h.Negative {
		b64 |= 0x8000000000000000
	}
	return math.Float64frombits(b64), nil
}

// binParse converts h to a float64 through a binary.Bin approximation. It
// reports ok only when there is provably no ambiguity in the rounding to
// 53 bits; on false the caller must use the exact slow path.
func binParse(h *decimal.Dec) (float64, bool) {
	// errBound is an upper bound on the difference between b.Mantissa
	// and h's actual value, in units in the last place of b.Mantissa.
	// It is a numerical approximation error, not an error in the Go
	// sense.
	errBound := uint64(0)

	// Up to 19 decimal digits convert exactly into 64 binary digits:
	// (1e19 < (1<<64)) and ((1<<64) < 1e20). Beyond 19 truncates.
	iEnd := h.NumDigits
	if iEnd > 19 {
		iEnd = 19
		errBound = 1
	}
	mantissa := uint64(0)
	for _, digit := range h.Digits[:iEnd] {
		mantissa = 10*mantissa + uint64(digit)
	}

	exp10 := h.DecimalPoint - int32(iEnd)
	if exp10 < binary.MinExp10 || exp10 > binary.MaxExp10 {
		return 0, false
	}

	// When the mantissa fits in 52 bits, plain float64 arithmetic may
	// already be exact, avoiding the Bin entirely.
	if mantissa>>52 == 0 {
		if f, ok := exactParse(mantissa, exp10); ok {
			return withSign(f, h.Negative), true
		}
	}

	b := binary.Bin{Mantissa: mantissa, Exp2: 0}
	errBound <<= b.Normalize()

	// Each MulPow10 multiplies two approximated mantissas (ours, off by
	// at most errBound, and the table's, off by strictly less than one)
	// and rounds: at most 2 more units of error, scaled up by the
	// normalizing shift that follows.
	b.MulPow10(exp10)
	errBound += 2
	errBound <<= b.Normalize()

	// The approximation is good; the question is whether it is good
	// enough. The surplus bits are the ones dropped when narrowing the
	// 64 mantissa bits to float64's 1+52 - normally 11, more for
	// subnormals. Rounding is certain only if the surplus lies clearly
	// on one side of the halfway point even when perturbed by
	// ±errBound.
	const f64Bias = -1023
	const subnormalExp2 = f64Bias - 63
	surplusBits := uint32(11)
	if subnormalExp2 >= b.Exp2 {
		surplusBits += 1 + uint32(subnormalExp2-b.Exp2)
	}

	surplusMask := uint64(1)<<surplusBits - 1
	surplus := int64(b.Mantissa & surplusMask)
	halfway := int64(uint64(1) << (surplusBits - 1))

	if surplus > halfway-int64(errBound) && surplus < halfway+int64(errBound) {
		return 0, false
	}
	return b.Float64(h.Negative), true
}

// exactParse resolves a small literal with pure float64 arithmetic, which
// is correctly rounded whenever every step is exact. 15 is such that 1e15
// is losslessly representable in a float64 mantissa: (1e15 < (1<<53)) and
// ((1<<53) < 1e16). 22 is the largest exactly representable power of ten.
//
// Precondition: mantissa fits in 52 bits.
func exactParse(mantissa uint64, exp10 int32) (float64, bool) {
	d := float64(mantissa)
	switch {
	case exp10 == 0:
		return d, true

	case exp10 > 0:
		if exp10 > 22 {
			if exp10 > 15+22 {
				return 0, false
			}
			// For exp10 in 23 ..= 37, move a few zeroes from the
			// exponent into the mantissa. Staying under 1e15
			// means no mantissa bits were truncated.
			d *= binary.ExactPow10(exp10 - 22)
			exp10 = 22
			if d >= 1e15 {
				return 0, false
			}
		}
		return d * binary.ExactPow10(exp10), true

	default:
		if exp10 < -22 {
			return 0, false
		}
		return d / binary.ExactPow10(-exp10), true
	}
}

// lower(c) is a lower-case letter if and only if c is either that
// lower-case letter or the equivalent upper-case letter.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// parseSpecial recognizes the literals "inf", "infinity" and "nan",
// case-insensitive, with an optional sign and optional underscore
// padding. It is consulted only after the numeric grammar has failed.
func parseSpecial(s []byte) (float64, bool) {
	p, q := 0, len(s)

	for ; p < q && s[p] == '_'; p++ {
	}
	if p >= q {
		return 0, false
	}

	negative := false
	if s[p] == '+' {
		p++
	} else if s[p] == '-' {
		negative = true
		p++
	}
	for ; p < q && s[p] == '_'; p++ {
	}
	if p >= q {
		return 0, false
	}

	nan := false
	switch lower(s[p]) {
	case 'i':
		if q-p < 3 || lower(s[p+1]) != 'n' || lower(s[p+2]) != 'f' {
			return 0, false
		}
		p += 3

		if p < q && s[p] != '_' {
			if q-p < 5 ||
				lower(s[p+0]) != 'i' ||
				lower(s[p+1]) != 'n' ||
				lower(s[p+2]) != 'i' ||
				lower(s[p+3]) != 't' ||
				lower(s[p+4]) != 'y' {
				return 0, false
			}
			p += 5
			if p < q && s[p] != '_' {
				return 0, false
			}
		}

	case 'n':
		if q-p < 3 || lower(s[p+1]) != 'a' || lower(s[p+2]) != 'n' {
			return 0, false
		}
		p += 3
		if p < q && s[p] != '_' {
			return 0, false
		}
		nan = true

	default:
		return 0, false
	}

	for ; p < q && s[p] == '_'; p++ {
	}
	if p != q {
		return 0, false
	}

	b64 := uint64(0x7FF0000000000000)
	if nan {
		b64 = 0x7FFFFFFFFFFFFFFF
	}
	if negative {
		b64 |= 0x8000000000000000
	}
	return math.Float64frombits(b64), true
}

func withSign(f float64, negative bool) float64 {
	if negative {
		return -f
	}
	return f
}

func packZero(negative bool) float64 {
	if negative {
		return math.Float64frombits(0x8000000000000000)
	}
	return 0
}

func packInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}
	return math.Inf(+1)
}
