package decimal

const (
	// DigitsPrecision is the maximum number of significant decimal digits
	// a Dec can hold.
	DigitsPrecision = 800

	// PointRange bounds DecimalPoint for in-range values. A Dec whose
	// DecimalPoint lies outside ±PointRange is a sentinel: effectively
	// zero below, effectively infinite above.
	PointRange = 2047

	// MaxShift is the largest N such that (10 << N) < (1 << 64). Shift
	// decomposes larger shifts into chunks of at most MaxShift bits.
	MaxShift = 60
)

// Dec is a high precision fixed point base 10 number.
//
// Digits[:NumDigits] are the significant digits in big-endian order, as
// values 0 through 9 (not ASCII). DecimalPoint is the position of the
// decimal point relative to Digits[0]: it may be negative or exceed
// NumDigits, in which case the explicit digits are padded with implicit
// zeroes. For example, with NumDigits 3 and Digits 7, 8, 9:
//
//	DecimalPoint -1 means .0789
//	DecimalPoint +0 means .789
//	DecimalPoint +1 means 7.89
//	DecimalPoint +3 means 789.
//	DecimalPoint +5 means 78900.
//
// Negative is a sign bit; positive and negative zero are distinct.
// Truncated records that digits beyond DigitsPrecision were dropped and at
// least one of them was non-zero.
//
// Trailing zero digits are always trimmed: Digits[NumDigits-1] != 0
// whenever NumDigits > 0. The all-fields-zero Dec is valid and is +0.
type Dec struct {
	NumDigits    uint32
	DecimalPoint int32
	Negative     bool
	Truncated    bool
	Digits       [DigitsPrecision]uint8
}

// trim removes trailing zero digits. They carry no information, since
// DecimalPoint is tracked explicitly.
func (d *Dec) trim() {
	for d.NumDigits > 0 && d.Digits[d.NumDigits-1] == 0 {
		d.NumDigits--
	}
}

// Assign sets d to the integer x with the given sign.
func (d *Dec) Assign(x uint64, negative bool) {
	n := uint32(0)

	// Work right to left through a scratch buffer, then copy the digits
	// into place once their count is known.
	var buf [20]uint8
	for x > 0 {
		remaining := x / 10
		buf[len(buf)-1-int(n)] = uint8(x - 10*remaining)
		n++
		x = remaining
	}
	copy(d.Digits[:n], buf[uint32(len(buf))-n:])

	d.NumDigits = n
	d.DecimalPoint = int32(n)
	d.Negative = negative
	d.Truncated = false
	d.trim()
}
