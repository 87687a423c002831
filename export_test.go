package floatconv

// ParseSlowly is Parse with the binary approximation path disabled,
// leaving only the exact decimal path. Exported for tests.
func ParseSlowly(s []byte) (_ float64, err error) {
	defer Error.WrapP(&err)
	return parse(s, true)
}
