package decimal

import "math"

// RoundDown truncates d to at most n digits. Negative n, or n at or above
// the current digit count, is a no-op.
func (d *Dec) RoundDown(n int32) {
	if n < 0 || d.NumDigits <= uint32(n) {
		return
	}
	d.NumDigits = uint32(n)
	d.trim()
}

// RoundUp rounds d up to at most n digits. Negative n, or n at or above
// the current digit count, is a no-op.
func (d *Dec) RoundUp(n int32) {
	if n < 0 || d.NumDigits <= uint32(n) {
		return
	}

	for n--; n >= 0; n-- {
		if d.Digits[n] < 9 {
			d.Digits[n]++
			d.NumDigits = uint32(n + 1)
			return
		}
	}

	// The number is all 9s. Change to a single 1 and adjust the decimal
	// point.
	d.Digits[0] = 1
	d.NumDigits = 1
	d.DecimalPoint++
}

// RoundNearest rounds d to at most n digits, to nearest, with ties going
// to even. A truncated d can never be an exact tie, so ties on a truncated
// number round up. Negative n, or n at or above the current digit count,
// is a no-op.
func (d *Dec) RoundNearest(n int32) {
	if n < 0 || d.NumDigits <= uint32(n) {
		return
	}
	up := d.Digits[n] >= 5
	if d.Digits[n] == 5 && uint32(n+1) == d.NumDigits {
		up = d.Truncated ||
			(n > 0 && d.Digits[n-1]&1 != 0)
	}

	if up {
		d.RoundUp(n)
	} else {
		d.RoundDown(n)
	}
}

// RoundedInteger returns the integral part of d, rounded to nearest with
// ties to even, provided it has 18 or fewer decimal digits. For 19 or more
// digits it returns math.MaxUint64 as an overflow sentinel. Note that:
//
//	(1 << 53) is    9007199254740992, which has 16 decimal digits.
//	(1 << 59) is  576460752303423488, which has 18 decimal digits.
//	(1 << 63) is 9223372036854775808, which has 19 decimal digits.
//
// and that IEEE 754 double precision has 52 explicit mantissa bits.
//
// d's sign is ignored: rounding -8.6 returns 9.
func (d *Dec) RoundedInteger() uint64 {
	if d.NumDigits == 0 || d.DecimalPoint < 0 {
		return 0
	} else if d.DecimalPoint > 18 {
		return math.MaxUint64
	}

	dp := uint32(d.DecimalPoint)
	n := uint64(0)
	for i := uint32(0); i < dp; i++ {
		n = 10 * n
		if i < d.NumDigits {
			n += uint64(d.Digits[i])
		}
	}

	roundUp := false
	if dp < d.NumDigits {
		roundUp = d.Digits[dp] >= 5
		if d.Digits[dp] == 5 && dp+1 == d.NumDigits {
			// Exactly halfway. If truncated, round up, otherwise
			// round to even.
			roundUp = d.Truncated ||
				(dp > 0 && d.Digits[dp-1]&1 != 0)
		}
	}
	if roundUp {
		n++
	}

	return n
}

// RoundJustEnough rounds d to the shortest number of digits that still
// round-trips to the double-precision value identified by exp2 and
// mantissa: the number (mantissa * 2^(exp2-52)), which must equal the
// number already held in d.
func (d *Dec) RoundJustEnough(exp2 int32, mantissa uint64) {
	// The magic numbers 52 and 53 in this function are because IEEE 754
	// double precision has 52 explicit mantissa bits.
	//
	// If the value is zero or a small integer, the digits are already as
	// short as possible.
	if mantissa == 0 ||
		(exp2 < 53 && d.DecimalPoint >= int32(d.NumDigits)) {
		return
	}

	// The smallest normal value has an exp2 of -1022 and a mantissa of
	// (1 << 52). Subnormal values have the same exp2 but a smaller
	// mantissa.
	const minInclNormalExp2 = -1022
	const minInclNormalMantissa = 0x0010000000000000

	// Compute lower and upper bounds such that anything between them
	// (possibly inclusive) rounds to the original value. Each bound is
	// the midpoint to the neighboring representable value; for the lower
	// bound the neighbor is (mantissa - 1) at the same exponent, unless
	// decrementing would drop the (1 << 52) bit of a normal value, in
	// which case the gap below is half as wide. Midpoints are formed as
	// ((2 * mantissa) ± 1) at (exponent - 1), noting that 52 became 53.
	lExp2 := exp2
	lMantissa := mantissa - 1
	if exp2 > minInclNormalExp2 && mantissa <= minInclNormalMantissa {
		lExp2 = exp2 - 1
		lMantissa = 2*mantissa - 1
	}
	var lower Dec
	lower.Assign(2*lMantissa+1, false)
	lower.Shift(lExp2 - 53)

	var upper Dec
	upper.Assign(2*mantissa+1, false)
	upper.Shift(exp2 - 53)

	// The bounds themselves are possible outputs only if the original
	// mantissa is even, so that round-to-even would come back to the
	// original mantissa and not a neighbor.
	inclusive := mantissa&1 == 0

	// While walking the digits we need to know whether rounding up would
	// stay within the upper bound. upperDelta tracks that:
	//
	//	-1: the digits of d and upper agree so far.
	//	 0: a difference of exactly 1 was seen, followed only by 9s in
	//	    d and 0s in upper. Rounding up may fall outside the bound
	//	    if the bound is not inclusive.
	//	+1: the difference is greater than that, and rounding up is
	//	    certainly within the bound.
	upperDelta := -1

	// Walk the digit positions until d has distinguished itself from
	// lower or upper. The three numbers may place their decimal points
	// differently; upper is the longest, so ui runs from 0 and the other
	// two indexes are derived from it.
	for ui := int32(0); ; ui++ {
		hi := ui - upper.DecimalPoint + d.DecimalPoint
		if hi >= int32(d.NumDigits) {
			break
		}
		hd := uint8(0)
		if uint32(hi) < d.NumDigits {
			hd = d.Digits[hi]
		}

		li := ui - upper.DecimalPoint + lower.DecimalPoint
		ld := uint8(0)
		if uint32(li) < lower.NumDigits {
			ld = lower.Digits[li]
		}

		// Rounding down (truncating) is allowed if lower has a
		// different digit than d, or if lower is inclusive and this is
		// its final digit.
		canRoundDown := ld != hd ||
			(inclusive && li+1 == int32(lower.NumDigits))

		ud := uint8(0)
		if uint32(ui) < upper.NumDigits {
			ud = upper.Digits[ui]
		}
		if upperDelta < 0 {
			if hd+1 < ud {
				// d     = 12345???
				// upper = 12347???
				upperDelta = +1
			} else if hd != ud {
				// d     = 12345???
				// upper = 12346???
				upperDelta = 0
			}
		} else if upperDelta == 0 {
			if hd != 9 || ud != 0 {
				// d     = 1234598?
				// upper = 1234600?
				upperDelta = +1
			}
		}

		// Rounding up is allowed if upper has a different digit than d
		// and either upper is inclusive or upper is strictly bigger
		// than the result of rounding up.
		canRoundUp := upperDelta > 0 ||
			(upperDelta == 0 &&
				(inclusive || ui+1 < int32(upper.NumDigits)))

		// Round to nearest if both directions work, round in the only
		// permitted direction if one does, and keep walking otherwise.
		if canRoundDown {
			if canRoundUp {
				d.RoundNearest(hi + 1)
			} else {
				d.RoundDown(hi + 1)
			}
			return
		} else if canRoundUp {
			d.RoundUp(hi + 1)
			return
		}
	}
}
