package decimal

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("floatconv: decimal")

// ErrMalformedInput tags text that does not match the numeric grammar.
var ErrMalformedInput = errs.Class("malformed input")
