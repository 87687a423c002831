package decimal

// Parse sets d to the number held in s. The accepted grammar is:
//
//	literal = [sign] digits [('e'|'E') [sign] digits]
//	sign    = '+' | '-'
//	digits  = (digit | '_')* with at least one digit,
//	          and at most one '.' or ',' anywhere among them
//
// Underscores are no-op separators and are skipped anywhere, so ".5" and
// "5." are both accepted. Both '.' and ',' are accepted as the decimal
// separator, regardless of locale.
// Unnecessary leading zeroes ("007", "0644") are rejected. Digits beyond
// DigitsPrecision are dropped; dropping a non-zero digit sets Truncated.
// The exponent and the final decimal point position are clamped rather
// than overflowed.
//
// Any malformation, including leftover unconsumed bytes, returns an
// ErrMalformedInput error; d is then in an unspecified state.
func (d *Dec) Parse(s []byte) (err error) {
	defer Error.WrapP(&err)

	d.NumDigits = 0
	d.DecimalPoint = 0
	d.Negative = false
	d.Truncated = false

	p, q := 0, len(s)

	for ; p < q && s[p] == '_'; p++ {
	}
	if p >= q {
		return ErrMalformedInput.New("no digits")
	}

	// Sign.
	if s[p] == '+' {
		p++
	} else if s[p] == '-' {
		d.Negative = true
		p++
	}
	for ; p < q && s[p] == '_'; p++ {
	}

	// Digits.
	nd := uint32(0)
	dp := int32(0)
	sawDigits := false
	sawNonZeroDigits := false
	sawDot := false
loop:
	for ; p < q; p++ {
		switch c := s[p]; {
		case c == '_':
			// No-op.

		case c == '.' || c == ',':
			if sawDot {
				return ErrMalformedInput.New("multiple decimal separators")
			}
			sawDot = true
			dp = int32(nd)

		case c == '0':
			if !sawDot && !sawNonZeroDigits && sawDigits {
				// Unnecessary leading zeroes: "000123" or "0644".
				return ErrMalformedInput.New("leading zero")
			}
			sawDigits = true
			if nd == 0 {
				// Track leading zeroes implicitly.
				dp--
			} else if nd < DigitsPrecision {
				d.Digits[nd] = 0
				nd++
			}
			// Long-tail zeroes are ignored.

		case '0' < c && c <= '9':
			if !sawDot && !sawNonZeroDigits && sawDigits {
				return ErrMalformedInput.New("leading zero")
			}
			sawDigits = true
			sawNonZeroDigits = true
			if nd < DigitsPrecision {
				d.Digits[nd] = c - '0'
				nd++
			} else {
				// Long-tail non-zeroes can affect rounding.
				d.Truncated = true
			}

		default:
			break loop
		}
	}

	if !sawDigits {
		return ErrMalformedInput.New("no digits")
	}
	if !sawDot {
		dp = int32(nd)
	}

	// Exponent.
	if p < q && (s[p] == 'E' || s[p] == 'e') {
		p++
		for ; p < q && s[p] == '_'; p++ {
		}
		if p >= q {
			return ErrMalformedInput.New("missing exponent digits")
		}

		expSign := int32(+1)
		if s[p] == '+' {
			p++
		} else if s[p] == '-' {
			expSign = -1
			p++
		}

		// expLarge caps the accumulated exponent. Any value at or above
		// it already pins the final decimal point to a sentinel, so
		// further digits only need to be consumed, not counted.
		const expLarge = PointRange + DigitsPrecision
		exp := int32(0)
		sawExpDigits := false
		for ; p < q; p++ {
			c := s[p]
			if c == '_' {
				continue
			} else if '0' <= c && c <= '9' {
				sawExpDigits = true
				if exp < expLarge {
					exp = 10*exp + int32(c-'0')
				}
			} else {
				break
			}
		}
		if !sawExpDigits {
			return ErrMalformedInput.New("missing exponent digits")
		}
		dp += expSign * exp
	}

	if p != q {
		return ErrMalformedInput.New("unexpected byte %q", s[p])
	}

	d.NumDigits = nd
	switch {
	case nd == 0:
		d.DecimalPoint = 0
	case dp < -PointRange:
		d.DecimalPoint = -PointRange - 1
	case dp > +PointRange:
		d.DecimalPoint = +PointRange + 1
	default:
		d.DecimalPoint = dp
	}
	d.trim()
	return nil
}
