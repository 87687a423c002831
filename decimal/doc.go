// Package decimal provides a high precision, fixed capacity base 10 number.
//
// A Dec holds up to 800 significant decimal digits together with the
// position of the decimal point. 800 digits is enough to hold any finite
// IEEE 754 double-precision value exactly: the smallest positive subnormal,
// 2^-1074, has fewer significant digits than that. A Dec whose source had
// more than 800 significant digits is marked truncated, which feeds every
// later round-to-even decision (a truncated value can never be an exact
// tie).
//
// A Dec is not a general purpose arithmetic type. The only operations are
// the ones needed to convert between decimal text and double-precision
// binary floating point:
//
//   - Assign and Parse construct a Dec from an integer or from text.
//   - Shift multiplies or divides by a power of two.
//   - RoundDown, RoundUp, RoundNearest and RoundedInteger round to a digit
//     count, and RoundJustEnough rounds to the shortest form that still
//     identifies one particular double-precision value.
//
// Decimal points beyond ±2047 are sentinels: below -2047 the value is
// effectively zero, above +2047 it is effectively infinite. The ±2047
// bounds are further from zero than ±(324 + 800), so no in-range value is
// ever mistaken for a sentinel.
//
// A Dec is a plain value. It holds no pointers, allocates nothing, and is
// always owned by its caller.
package decimal
