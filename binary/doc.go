// Package binary provides a medium precision base 2 number.
//
// A Bin holds a 64-bit mantissa and a binary exponent: a little more
// precision than IEEE 754 double precision, but unlike double precision it
// cannot represent infinity or NaN, and it has no sign bit. The caller
// tracks negativity separately.
//
// A Bin is the fast path of decimal-to-binary conversion: multiplying a
// decimal mantissa by a precomputed 128-bit approximation of a power of
// ten gives an answer that is almost always provably correct after
// rounding to 53 bits. When the approximation error straddles a rounding
// boundary the caller falls back to exact decimal arithmetic instead.
//
// This is the "Do It Yourself Floating Point" data structure from Loitsch,
// "Printing Floating-Point Numbers Quickly and Accurately with Integers"
// (https://www.cs.tufts.edu/~nr/cs257/archive/florian-loitsch/printf.pdf).
package binary
