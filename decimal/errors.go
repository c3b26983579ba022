package decimal

import "github.com/zeebo/errs"

// Error is the class for all errors produced by this package.
var Error = errs.Class("decimal")

// Error kinds. Callers distinguish failures with Has rather than by
// message.
var (
	// OverflowError marks values that exceed the representable range of
	// a width, or literals that exceed a type's digit budget.
	OverflowError = errs.Class("decimal overflow")

	// MalformedInputError marks text that is not a syntactically valid
	// decimal literal.
	MalformedInputError = errs.Class("malformed decimal")

	// WidthSelectionError marks precisions beyond the widest supported
	// storage.
	WidthSelectionError = errs.Class("width selection")
)
