package fixp

import "github.com/zeebo/errs"

// Error is the class for all errors produced by this package.
var Error = errs.Class("fixp")

// Error kinds. Callers distinguish failures with Has rather than by
// message.
var (
	// ArgumentCountError marks a wrong number of constructor arguments
	// for the resolved name.
	ArgumentCountError = errs.Class("argument count")

	// ArgumentTypeError marks an argument of the wrong literal kind, or
	// argument values that violate the type's invariants.
	ArgumentTypeError = errs.Class("argument type")

	// NameResolutionError marks unknown type names and duplicate
	// registrations.
	NameResolutionError = errs.Class("name resolution")
)
