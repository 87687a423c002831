package floatconv

// Options is a bitmask configuring Render.
type Options uint32

const (
	// DecimalSeparatorIsAComma writes "1,5" instead of "1.5".
	DecimalSeparatorIsAComma Options = 0x0001

	// ExponentAbsent chooses the fixed point form, like "%f".
	ExponentAbsent Options = 0x0002

	// ExponentPresent chooses the scientific form, like "%e". When
	// neither exponent flag is set the shorter of the two forms is
	// chosen, like "%g", with precision counting significant digits
	// rather than fractional digits.
	ExponentPresent Options = 0x0004

	// JustEnoughPrecision ignores the precision argument and emits the
	// minimum number of digits that still identifies the value exactly:
	// parsing the output recovers the input bit for bit.
	JustEnoughPrecision Options = 0x0008

	// AlignRight writes the number into the tail of the destination
	// instead of the head.
	AlignRight Options = 0x0100

	// LeadingPlusSign writes an explicit '+' in front of non-negative
	// values.
	LeadingPlusSign Options = 0x0200
)
