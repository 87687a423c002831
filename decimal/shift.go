package decimal

// shiftNumNewDigits returns the number of additional decimal digits
// produced by multiplying d by 2^shift, for shift in [0, MaxShift].
//
// Multiplying by 2^shift can add either N or N-1 new digits, where N is
// taken from the high bits of leftShift[shift]: which of the two depends on
// whether d compares >= or < to the shift'th power of 5 (as 10 equals
// 2 * 5). The comparison is lexicographic over the decimal expansions, not
// numerical, and the expansion of 5^shift is read out of the powersOf5
// table at the offset held in the low bits of leftShift[shift].
//
// Thanks to Ken Thompson for the original idea.
func (d *Dec) shiftNumNewDigits(shift uint32) uint32 {
	// The mask keeps the table index in range even for out-of-contract
	// shift values.
	shift &= 63

	xA := uint32(leftShift[shift])
	xB := uint32(leftShift[shift+1])
	numNewDigits := xA >> 11
	pow5A := 0x7FF & xA
	pow5B := 0x7FF & xB

	pow5 := powersOf5[pow5A:pow5B]
	for i, p5 := range pow5 {
		if uint32(i) >= d.NumDigits {
			return numNewDigits - 1
		} else if d.Digits[i] == p5 {
			continue
		} else if d.Digits[i] < p5 {
			return numNewDigits - 1
		} else {
			return numNewDigits
		}
	}
	return numNewDigits
}

// smallShiftLeft multiplies d by 2^shift, for shift in [1, MaxShift].
//
// d's decimal point must be in the ±PointRange interval.
func (d *Dec) smallShiftLeft(shift uint32) {
	if d.NumDigits == 0 {
		return
	}
	numNewDigits := d.shiftNumNewDigits(shift)
	rx := int32(d.NumDigits - 1)                     // Read index.
	wx := int32(d.NumDigits - 1 + numNewDigits)      // Write index.
	n := uint64(0)

	// Repeat: pick up a digit, put down a digit, right to left.
	for rx >= 0 {
		n += uint64(d.Digits[rx]) << shift
		quo := n / 10
		rem := n - 10*quo
		if uint32(wx) < DigitsPrecision {
			d.Digits[wx] = uint8(rem)
		} else if rem > 0 {
			d.Truncated = true
		}
		n = quo
		wx--
		rx--
	}

	// Put down leading digits, right to left.
	for n > 0 {
		quo := n / 10
		rem := n - 10*quo
		if uint32(wx) < DigitsPrecision {
			d.Digits[wx] = uint8(rem)
		} else if rem > 0 {
			d.Truncated = true
		}
		n = quo
		wx--
	}

	d.NumDigits += numNewDigits
	if d.NumDigits > DigitsPrecision {
		d.NumDigits = DigitsPrecision
	}
	d.DecimalPoint += int32(numNewDigits)
	d.trim()
}

// smallShiftRight divides d by 2^shift, for shift in [1, MaxShift].
//
// d's decimal point must be in the ±PointRange interval.
func (d *Dec) smallShiftRight(shift uint32) {
	rx := uint32(0) // Read index.
	wx := uint32(0) // Write index.
	n := uint64(0)

	// Pick up enough leading digits to cover the first shift.
	for (n >> shift) == 0 {
		if rx < d.NumDigits {
			n = 10*n + uint64(d.Digits[rx])
			rx++
		} else if n == 0 {
			// d's number used to be zero and remains zero.
			return
		} else {
			// Read sufficient implicit trailing zeroes.
			for (n >> shift) == 0 {
				n = 10 * n
				rx++
			}
			break
		}
	}
	d.DecimalPoint -= int32(rx - 1)
	if d.DecimalPoint < -PointRange {
		// After the shift, d's number is effectively zero.
		d.NumDigits = 0
		d.DecimalPoint = 0
		d.Negative = false
		d.Truncated = false
		return
	}

	// Repeat: pick up a digit, put down a digit, left to right.
	mask := (uint64(1) << shift) - 1
	for rx < d.NumDigits {
		newDigit := uint8(n >> shift)
		n = 10*(n&mask) + uint64(d.Digits[rx])
		rx++
		d.Digits[wx] = newDigit
		wx++
	}

	// Put down trailing digits, left to right.
	for n > 0 {
		newDigit := uint8(n >> shift)
		n = 10 * (n & mask)
		if wx < DigitsPrecision {
			d.Digits[wx] = newDigit
			wx++
		} else if newDigit > 0 {
			d.Truncated = true
		}
	}

	d.NumDigits = wx
	d.trim()
}

// Shift multiplies d by 2^shift. Zero is a no-op, positive means left
// shift (multiply) and negative means right shift (divide). The shift is
// decomposed into chunks of at most MaxShift bits.
//
// d's decimal point must be in the ±PointRange interval.
func (d *Dec) Shift(shift int32) {
	if shift > 0 {
		for shift > +MaxShift {
			d.smallShiftLeft(MaxShift)
			shift -= MaxShift
		}
		d.smallShiftLeft(uint32(+shift))
	} else if shift < 0 {
		for shift < -MaxShift {
			d.smallShiftRight(MaxShift)
			shift += MaxShift
		}
		d.smallShiftRight(uint32(-shift))
	}
}
