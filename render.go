package floatconv

import (
	"math"

	"github.com/magnus-ISU/floatconv/decimal"
)

// Render formats x into dst and returns the number of bytes written. If
// dst is too small for the formatted number then it returns 0 and leaves
// dst untouched, no matter what options say about alignment.
//
// precision counts digits after the decimal separator when one of
// ExponentAbsent or ExponentPresent is set, and significant digits when
// neither is. It is ignored when JustEnoughPrecision is set, which
// instead emits the shortest digit string that parses back to exactly x.
func Render(dst []byte, x float64, precision uint32, options Options) int {
	// Decompose x (64 bits) into negativity (1 bit), base-2 exponent
	// (11 bits with a -1023 bias) and mantissa (52 bits).
	b64 := math.Float64bits(x)
	neg := b64>>63 != 0
	exp2 := int32(b64>>52) & 0x7FF
	man := b64 & 0x000FFFFFFFFFFFFF

	// Apply the exponent bias and set the implicit top bit of the
	// mantissa, unless x is subnormal. Also take care of Inf and NaN.
	if exp2 == 0x7FF {
		if man != 0 {
			return renderNaN(dst)
		}
		return renderInf(dst, neg, options)
	} else if exp2 == 0 {
		exp2 = -1022
	} else {
		exp2 -= 1023
		man |= 0x0010000000000000
	}

	if precision > 4095 {
		precision = 4095
	}

	var h decimal.Dec
	h.Assign(man, neg)
	if h.NumDigits > 0 {
		h.Shift(exp2 - 52)
	}

	switch options & (ExponentAbsent | ExponentPresent) {
	case ExponentAbsent: // The "%f" format.
		if options&JustEnoughPrecision != 0 {
			h.RoundJustEnough(exp2, man)
			p := int32(h.NumDigits) - h.DecimalPoint
			if p < 0 {
				p = 0
			}
			precision = uint32(p)
		} else {
			h.RoundNearest(int32(precision) + h.DecimalPoint)
		}
		return renderExponentAbsent(dst, &h, precision, options)

	case ExponentPresent: // The "%e" format.
		if options&JustEnoughPrecision != 0 {
			h.RoundJustEnough(exp2, man)
			if h.NumDigits > 0 {
				precision = h.NumDigits - 1
			} else {
				precision = 0
			}
		} else {
			h.RoundNearest(int32(precision) + 1)
		}
		return renderExponentPresent(dst, &h, precision, options)
	}

	// Neither flag gives the "%g" format, where precision counts
	// significant digits, not digits after the decimal separator.
	// Perform rounding and decide between "%e" and "%f".
	eThreshold := int32(0)
	if options&JustEnoughPrecision != 0 {
		h.RoundJustEnough(exp2, man)
		precision = h.NumDigits
		eThreshold = 6
	} else {
		if precision == 0 {
			precision = 1
		}
		h.RoundNearest(int32(precision))
		eThreshold = int32(precision)
		nd := int32(h.NumDigits)
		if eThreshold > nd && nd >= h.DecimalPoint {
			eThreshold = nd
		}
	}

	// Use the "%e" format if the exponent is large.
	e := h.DecimalPoint - 1
	if e < -4 || eThreshold <= e {
		p := precision
		if p > h.NumDigits {
			p = h.NumDigits
		}
		if p > 0 {
			p--
		}
		return renderExponentPresent(dst, &h, p, options)
	}

	// Use the "%f" format otherwise.
	p := int32(precision)
	if p > h.DecimalPoint {
		p = int32(h.NumDigits)
	}
	p -= h.DecimalPoint
	if p < 0 {
		p = 0
	}
	return renderExponentAbsent(dst, &h, uint32(p), options)
}

func renderInf(dst []byte, neg bool, options Options) int {
	if neg {
		if len(dst) < 4 {
			return 0
		}
		copy(dst, "-Inf")
		return 4
	}

	if options&LeadingPlusSign != 0 {
		if len(dst) < 4 {
			return 0
		}
		copy(dst, "+Inf")
		return 4
	}

	if len(dst) < 3 {
		return 0
	}
	copy(dst, "Inf")
	return 3
}

func renderNaN(dst []byte) int {
	if len(dst) < 3 {
		return 0
	}
	copy(dst, "NaN")
	return 3
}

func renderExponentAbsent(dst []byte, h *decimal.Dec, precision uint32, options Options) int {
	n := 0
	if h.Negative || options&LeadingPlusSign != 0 {
		n = 1
	}
	if h.DecimalPoint <= 0 {
		n += 1
	} else {
		n += int(h.DecimalPoint)
	}
	if precision > 0 {
		n += int(precision) + 1 // +1 for the separator.
	}

	// Don't modify dst if the formatted number won't fit.
	if n > len(dst) {
		return 0
	}

	buf := dst[:n]
	if options&AlignRight != 0 {
		buf = dst[len(dst)-n:]
	}
	w := 0

	if h.Negative {
		buf[w] = '-'
		w++
	} else if options&LeadingPlusSign != 0 {
		buf[w] = '+'
		w++
	}

	// Integral digits.
	if h.DecimalPoint <= 0 {
		buf[w] = '0'
		w++
	} else {
		m := uint32(h.DecimalPoint)
		if m > h.NumDigits {
			m = h.NumDigits
		}
		i := uint32(0)
		for ; i < m; i++ {
			buf[w] = '0' | h.Digits[i]
			w++
		}
		for ; i < uint32(h.DecimalPoint); i++ {
			buf[w] = '0'
			w++
		}
	}

	// Separator and then fractional digits.
	if precision > 0 {
		buf[w] = separator(options)
		w++
		for i := uint32(0); i < precision; i++ {
			j := uint32(h.DecimalPoint) + i
			if j < h.NumDigits {
				buf[w] = '0' | h.Digits[j]
			} else {
				buf[w] = '0'
			}
			w++
		}
	}

	return n
}

func renderExponentPresent(dst []byte, h *decimal.Dec, precision uint32, options Options) int {
	exp := int32(0)
	if h.NumDigits > 0 {
		exp = h.DecimalPoint - 1
	}
	negativeExp := exp < 0
	if negativeExp {
		exp = -exp
	}

	// Minimum 3 bytes: first digit and then "e±".
	n := 3
	if h.Negative || options&LeadingPlusSign != 0 {
		n = 4
	}
	if precision > 0 {
		n += int(precision) + 1 // +1 for the separator.
	}
	if exp < 100 {
		n += 2
	} else {
		n += 3
	}

	// Don't modify dst if the formatted number won't fit.
	if n > len(dst) {
		return 0
	}

	buf := dst[:n]
	if options&AlignRight != 0 {
		buf = dst[len(dst)-n:]
	}
	w := 0

	if h.Negative {
		buf[w] = '-'
		w++
	} else if options&LeadingPlusSign != 0 {
		buf[w] = '+'
		w++
	}

	// Integral digit.
	if h.NumDigits > 0 {
		buf[w] = '0' | h.Digits[0]
	} else {
		buf[w] = '0'
	}
	w++

	// Separator and then fractional digits.
	if precision > 0 {
		buf[w] = separator(options)
		w++
		i := uint32(1)
		j := precision + 1
		if j > h.NumDigits {
			j = h.NumDigits
		}
		for ; i < j; i++ {
			buf[w] = '0' | h.Digits[i]
			w++
		}
		for ; i <= precision; i++ {
			buf[w] = '0'
			w++
		}
	}

	// Exponent: "e±" and then 2 or 3 digits.
	buf[w] = 'e'
	w++
	if negativeExp {
		buf[w] = '-'
	} else {
		buf[w] = '+'
	}
	w++
	if exp < 10 {
		buf[w+0] = '0'
		buf[w+1] = '0' | uint8(exp)
	} else if exp < 100 {
		buf[w+0] = '0' | uint8(exp/10)
		buf[w+1] = '0' | uint8(exp%10)
	} else {
		buf[w+0] = '0' | uint8(exp/100)
		buf[w+1] = '0' | uint8(exp/10%10)
		buf[w+2] = '0' | uint8(exp%10)
	}

	return n
}

func separator(options Options) byte {
	if options&DecimalSeparatorIsAComma != 0 {
		return ','
	}
	return '.'
}
