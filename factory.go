package fixp

import (
	"fmt"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixp/decimal"
)

// createExact returns the constructor for a width bound name such as
// Decimal32. Precision is fixed to the width's capacity and the single
// argument supplies the scale.
func createExact(width decimal.Width) Constructor {
	return func(args []Literal) (_ *decimal.Descriptor, err error) {
		defer Error.WrapP(&err)

		if len(args) != 1 {
			return nil, ArgumentCountError.New(
				"Decimal%d data type family must have exactly one argument: scale",
				width,
			)
		}

		scale, ok := args[0].asNonNegative()
		if !ok {
			return nil, ArgumentTypeError.New(
				"Decimal%d data type family must have a number as its argument, got %s",
				width,
				args[0].Kind,
			)
		}

		precision := uint64(width.MaxPrecision())
		if scale > precision {
			return nil, ArgumentTypeError.New(
				"scale %d is larger than precision %d",
				scale,
				precision,
			)
		}

		return decimal.New(width, uint32(precision), uint32(scale))
	}
}

// createGeneric is the constructor for the Decimal name and its aliases.
// Without an argument list it defaults to Decimal(10, 0); one argument is
// the precision; two are precision and scale. The smallest width whose
// digit capacity admits the precision backs the type.
func createGeneric(args []Literal) (_ *decimal.Descriptor, err error) {
	defer Error.WrapP(&err)

	precision := uint64(10)
	scale := uint64(0)

	if args != nil {
		if len(args) == 0 || len(args) > 2 {
			return nil, ArgumentCountError.New(
				"Decimal data type family must have precision and optional scale arguments",
			)
		}

		var ok bool

		precision, ok = args[0].asUint()
		if !ok {
			return nil, ArgumentTypeError.New(
				"Decimal argument precision is invalid: got %s",
				args[0].Kind,
			)
		}

		if len(args) == 2 {
			scale, ok = args[1].asNonNegative()
			if !ok {
				return nil, ArgumentTypeError.New(
					"Decimal argument scale is invalid: got %s",
					args[1].Kind,
				)
			}
		}
	}

	// Bound before narrowing so oversized literals cannot truncate into
	// a valid precision.
	if precision > uint64(decimal.Width256.MaxPrecision()) {
		return nil, decimal.WidthSelectionError.New(
			"precision %d exceeds the widest supported decimal (%d digits)",
			precision,
			decimal.Width256.MaxPrecision(),
		)
	}

	if precision < 1 {
		return nil, ArgumentTypeError.New(
			"Decimal argument precision is invalid: must be at least 1",
		)
	}

	if scale > precision {
		return nil, ArgumentTypeError.New(
			"scale %d is larger than precision %d",
			scale,
			precision,
		)
	}

	return decimal.ForPrecision(uint32(precision), uint32(scale))
}

var defaultRegistry = newDefaultRegistry()

// newDefaultRegistry builds the registry of the decimal type family. It
// runs once at package initialization; lookups never mutate the result.
func newDefaultRegistry() *Registry {
	r := NewRegistry()

	for _, reg := range []struct {
		name string
		ctor Constructor
	}{
		{"Decimal32", createExact(decimal.Width32)},
		{"Decimal64", createExact(decimal.Width64)},
		{"Decimal128", createExact(decimal.Width128)},
		{"Decimal256", createExact(decimal.Width256)},
		{"Decimal", createGeneric},
	} {
		if err := r.Register(reg.name, reg.ctor, CaseInsensitive); err != nil {
			panic(fmt.Sprintf("fixp: registering %s: %v", reg.name, err))
		}
	}

	for _, alias := range []string{"DEC", "NUMERIC", "FIXED"} {
		if err := r.RegisterAlias(alias, "Decimal", CaseInsensitive); err != nil {
			panic(fmt.Sprintf("fixp: registering alias %s: %v", alias, err))
		}
	}

	return r
}

// Default returns the process wide registry. It is populated during package
// initialization and must not be modified afterward.
func Default() *Registry {
	return defaultRegistry
}

// Resolve looks up a type name in the default registry.
func Resolve(name string, args []Literal) (*decimal.Descriptor, error) {
	d, err := defaultRegistry.Resolve(name, args)
	if err != nil {
		return nil, oops.Trace(err)
	}

	return d, nil
}
