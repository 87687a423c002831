//go:build ignore
// +build ignore

// This program generates decimal/tables.go and binary/tables.go:
//
//	go run gen/tables.go
//
// Everything is computed with exact integer arithmetic; the only
// approximation is the deliberate truncation of the pow10 mantissas to
// 128 bits.
package main

import (
	"bytes"
	"fmt"
	"log"
	"math/big"
	"os"
)

const (
	minExp10 = -326
	maxExp10 = +310

	pow10Bias = 1214
)

func main() {
	if err := os.WriteFile("decimal/tables.go", decimalTables(), 0o644); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("binary/tables.go", binaryTables(), 0o644); err != nil {
		log.Fatal(err)
	}
}

func decimalTables() []byte {
	// Concatenate the decimal expansions of 5^i for i in [1, 60] and
	// record where each expansion starts. Multiplying by 2^i adds
	// either N or N-1 decimal digits, where N is the number of digits
	// in 2^i; which of the two is decided at runtime by comparing
	// against 5^i, so both N and the offset are packed into one entry.
	var digits []byte
	entries := []uint16{0} // Shift 0 is a no-op.

	five := big.NewInt(5)
	two := big.NewInt(2)
	for i := int64(1); i <= 60; i++ {
		n := len(new(big.Int).Exp(two, big.NewInt(i), nil).String())
		entries = append(entries, uint16(n)<<11|uint16(len(digits)))
		digits = append(digits, new(big.Int).Exp(five, big.NewInt(i), nil).String()...)
	}
	// Shifts beyond 60 are out of contract; pad so that the entry for
	// shift 60 still has a successor to read its end offset from.
	for len(entries) < 65 {
		entries = append(entries, uint16(len(digits)))
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by gen/tables.go. DO NOT EDIT.\n\npackage decimal\n\n")

	fmt.Fprintf(buf, `// leftShift[i] encodes the number of new decimal digits created by
// multiplying a positive integer by 2^i. The high 5 bits hold N, the
// larger of the two possible counts (the actual count is N or N-1,
// decided by a lexicographic comparison against 5^i). The low 11 bits
// are the offset of 5^i's decimal expansion within powersOf5; the next
// entry's offset marks its end.
var leftShift = [65]uint16{
`)
	for i, e := range entries {
		if i%9 == 0 {
			fmt.Fprintf(buf, "\t")
		}
		fmt.Fprintf(buf, "0x%04X,", e)
		if i%9 == 8 || i == len(entries)-1 {
			fmt.Fprintf(buf, "\n")
		} else {
			fmt.Fprintf(buf, " ")
		}
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, `// powersOf5 holds the decimal digits of the positive powers of 5,
// concatenated: 5, 25, 125, 625, 3125, and so on.
var powersOf5 = [...]uint8{
`)
	for i, d := range digits {
		if i%25 == 0 {
			fmt.Fprintf(buf, "\t")
		}
		fmt.Fprintf(buf, "%d,", d-'0')
		if i%25 == 24 || i == len(digits)-1 {
			fmt.Fprintf(buf, "\n")
		} else {
			fmt.Fprintf(buf, " ")
		}
	}
	fmt.Fprintf(buf, "}\n")
	return buf.Bytes()
}

func binaryTables() []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by gen/tables.go. DO NOT EDIT.\n\npackage binary\n\n")

	fmt.Fprintf(buf, "// pow10Bias is the bias applied to the exp2 field of every pow10 entry.\nconst pow10Bias = %d\n\n", pow10Bias)

	fmt.Fprintf(buf, `// pow10 holds truncated approximations to the powers of 10, from 1e%d
// to 1e+%d inclusive: a 128-bit mantissa (already normalized, split
// into hi and lo words) and a base-2 exponent biased by pow10Bias. For
// example, the entry for 1e-324 represents the approximation
//
//	0xCF42894A_5DCE35EA_52064CAC_828675B9 * (2 ** (0x000A - %d))
//
// Only the hi word takes part in the fast path multiply; the full
// mantissa is kept as generated.
var pow10 = [%d]struct {
	lo, hi uint64
	exp2   int32
}{
`, minExp10, maxExp10, pow10Bias, maxExp10-minExp10+1)

	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	for e := int64(minExp10); e <= maxExp10; e++ {
		mantissa, exp2 := pow10Mantissa(e)
		lo := new(big.Int).And(mantissa, mask).Uint64()
		hi := new(big.Int).Rsh(mantissa, 64).Uint64()
		fmt.Fprintf(buf, "\t{0x%016X, 0x%016X, 0x%04X}, // 1e%d\n", lo, hi, exp2, e)
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, `// exactPow10 holds the powers of 10 that double precision represents
// exactly: 5^23 needs 54 bits, so 1e22 is the last one.
var exactPow10 = [23]float64{
`)
	for e := 0; e <= 22; e++ {
		if e%12 == 0 {
			fmt.Fprintf(buf, "\t")
		}
		fmt.Fprintf(buf, "1e%d,", e)
		if e%12 == 11 || e == 22 {
			fmt.Fprintf(buf, "\n")
		} else {
			fmt.Fprintf(buf, " ")
		}
	}
	fmt.Fprintf(buf, "}\n")
	return buf.Bytes()
}

// pow10Mantissa returns the truncated 128-bit mantissa of 10^e and its
// biased base-2 exponent: 10^e = mantissa * 2^(exp2 - pow10Bias), up to
// truncation, with mantissa in [2^127, 2^128) and exp2 unbiasing to the
// position of the value's top bit minus 127.
func pow10Mantissa(e int64) (mantissa *big.Int, exp2 int32) {
	ten := big.NewInt(10)

	var expTop int64
	if e >= 0 {
		x := new(big.Int).Exp(ten, big.NewInt(e), nil)
		expTop = int64(x.BitLen()) - 1
		if shift := 128 - x.BitLen(); shift >= 0 {
			mantissa = new(big.Int).Lsh(x, uint(shift))
		} else {
			mantissa = new(big.Int).Rsh(x, uint(-shift))
		}
	} else {
		// 10^e is 1/p. p is not a power of two, so the top bit of
		// the quotient below lands exactly at bit 127.
		p := new(big.Int).Exp(ten, big.NewInt(-e), nil)
		expTop = -int64(p.BitLen())
		num := new(big.Int).Lsh(big.NewInt(1), uint(127+p.BitLen()))
		mantissa = num.Div(num, p)
	}

	return mantissa, int32(expTop) + pow10Bias - 127
}
