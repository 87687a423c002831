// Package floatconv converts between IEEE 754 double-precision binary
// floating point values and decimal text, with correct rounding.
//
// Parse converts a decimal literal to the nearest representable float64,
// using round-to-nearest with ties to even, exactly as IEEE 754 mandates,
// no matter how many digits the literal carries. Render converts a float64
// to fixed point, scientific, or shortest round-tripping decimal text.
//
// Parsing first tokenizes into a high precision decimal (package decimal),
// then tries a fast path through a 64-bit binary approximation (package
// binary). The fast path tracks its own worst-case approximation error;
// when that error straddles a rounding boundary the conversion falls back,
// transparently, to exact decimal arithmetic. Rendering always goes
// through the high precision decimal, since shortest-form and
// precision-aware rounding both need exact decimal digits.
//
// Neither path allocates: every intermediate value is a fixed-size,
// caller-owned stack value, and the only package-level state is immutable
// generated table data, safe for concurrent readers.
package floatconv
