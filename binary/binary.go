package binary

import (
	"math"
	"math/bits"
)

// MinExp10 and MaxExp10 bound the decimal exponents covered by the pow10
// table. The largest and smallest positive finite double-precision values
// are approximately 1.8e+308 and 4.9e-324; the table range extends past
// both so that any 19-digit decimal mantissa in range can be scaled.
const (
	MinExp10 = -326
	MaxExp10 = +310
)

// Bin is a medium precision floating point binary number: the value
// (Mantissa * 2^Exp2). There is no implicit mantissa bit; Mantissa is zero
// if and only if the value is zero. A Bin is normalized when its mantissa
// is zero or has its high bit set.
//
// The all-fields-zero Bin is valid and is +0.
type Bin struct {
	Mantissa uint64
	Exp2     int32
}

// Normalize shifts the mantissa until its high bit is set (a no-op for
// zero) and returns the shift count, which is the factor by which any
// tracked approximation error must be scaled.
func (b *Bin) Normalize() uint32 {
	if b.Mantissa == 0 {
		return 0
	}
	shift := uint32(bits.LeadingZeros64(b.Mantissa))
	b.Mantissa <<= shift
	b.Exp2 -= int32(shift)
	return shift
}

// MulPow10 multiplies b by the precomputed approximation of 10^exp10. The
// result is rounded but not necessarily normalized. Each call adds up to 2
// units in the last place of approximation error, before any scaling by a
// subsequent Normalize.
//
// Preconditions: b is normalized with a non-zero mantissa, and exp10 is in
// [MinExp10, MaxExp10].
func (b *Bin) MulPow10(exp10 int32) {
	p := &pow10[exp10-MinExp10]
	hi, lo := bits.Mul64(b.Mantissa, p.hi)
	// Round the mantissa up. This cannot overflow: the maximum possible
	// hi is 0xFFFFFFFFFFFFFFFE.
	b.Mantissa = hi + (lo >> 63)
	b.Exp2 = b.Exp2 + p.exp2 + 128 - pow10Bias
}

// Float64 converts b to a double-precision value with the given sign,
// rounding to nearest, packing infinity when the exponent is too large and
// a subnormal when it is too small.
//
// Preconditions: b is normalized with a non-zero mantissa.
func (b *Bin) Float64(negative bool) float64 {
	mantissa64 := b.Mantissa
	// A Bin's mantissa has its implicit (binary) decimal point at the
	// right hand end of the explicit digits; double precision has it
	// near the left hand end, with an implicit leading 1 bit. Together
	// the difference in semantics corresponds to adding 63.
	exp2 := b.Exp2 + 63

	// Ensure that exp2 is at least -1022, the minimum double-precision
	// exponent for normal (as opposed to subnormal) values.
	if exp2 < -1022 {
		n := uint32(-1022 - exp2)
		mantissa64 >>= n
		exp2 += int32(n)
	}

	// Narrow the 64 mantissa bits to 1+52, rounding up if the highest
	// dropped bit (bit 10) was set, and fixing any carry out of bit 52.
	mantissa53 := mantissa64 >> 11
	if mantissa64&1024 != 0 {
		mantissa53++
		if (mantissa53 >> 53) != 0 {
			mantissa53 >>= 1
			exp2++
		}
	}

	// Handle infinity (a nominal exponent of 1024) and subnormals (an
	// exponent of -1023 and no implicit bit 52).
	if exp2 >= 1024 {
		mantissa53 = 0
		exp2 = 1024
	} else if (mantissa53 >> 52) == 0 {
		exp2 = -1023
	}

	const f64Bias = -1023
	exp2Bits := uint64(exp2-f64Bias) & 0x07FF
	b64 := (mantissa53 & 0x000FFFFFFFFFFFFF) | (exp2Bits << 52)
	if negative {
		b64 |= 0x8000000000000000
	}
	return math.Float64frombits(b64)
}

// ExactPow10 returns 10^n as a float64, for n in [0, 22]: the range of
// powers of ten that double precision represents exactly.
func ExactPow10(n int32) float64 {
	return exactPow10[n]
}
