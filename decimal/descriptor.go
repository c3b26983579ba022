package decimal

import "fmt"

// Descriptor describes one fixed point decimal column type. It is
// constructed at type resolution time, immutable afterward, and shared by
// reference across all values of the type.
type Descriptor struct {
	width     Width
	precision uint32
	scale     uint32
}

// New returns a descriptor for the given width, precision, and scale.
func New(width Width, precision, scale uint32) (*Descriptor, error) {
	if !width.valid() {
		return nil, Error.New("unsupported width: %d", width)
	}

	if precision < 1 || precision > width.MaxPrecision() {
		return nil, Error.New(
			"precision %d is out of bounds for Decimal%d: expected 1 to %d",
			precision,
			width,
			width.MaxPrecision(),
		)
	}

	if scale > precision {
		return nil, Error.New(
			"scale %d is larger than precision %d",
			scale,
			precision,
		)
	}

	return &Descriptor{
		width:     width,
		precision: precision,
		scale:     scale,
	}, nil
}

// ForPrecision returns a descriptor backed by the smallest width whose digit
// capacity admits the precision.
func ForPrecision(precision, scale uint32) (*Descriptor, error) {
	for _, w := range Widths {
		if precision <= w.MaxPrecision() {
			return New(w, precision, scale)
		}
	}

	return nil, WidthSelectionError.New(
		"precision %d exceeds the widest supported decimal (%d digits)",
		precision,
		Width256.MaxPrecision(),
	)
}

// Width returns the storage width.
func (d *Descriptor) Width() Width {
	return d.width
}

// Precision returns the total digit budget.
func (d *Descriptor) Precision() uint32 {
	return d.precision
}

// Scale returns the count of digits after the decimal point.
func (d *Descriptor) Scale() uint32 {
	return d.scale
}

// Name returns the canonical type name.
func (d *Descriptor) Name() string {
	return fmt.Sprintf("Decimal(%d, %d)", d.precision, d.scale)
}

// SQLCompatibleName returns the standard SQL spelling of the type.
//
// SQL DECIMAL(M, D) caps M at 65 and D at 30. Types beyond those caps have
// no standard numeric spelling and fall back to TEXT.
func (d *Descriptor) SQLCompatibleName() string {
	if d.precision > 65 || d.scale > 30 {
		return "TEXT"
	}

	return fmt.Sprintf("DECIMAL(%d, %d)", d.precision, d.scale)
}

// Equal reports whether both descriptors describe the same value class:
// same width and same scale. Precision only limits parsing and is excluded.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if other == nil {
		return false
	}

	return d.width == other.width && d.scale == other.scale
}

// Promote returns a descriptor wide enough for overflow safe mixed
// arithmetic. Widths up to 128 land on 128; 256 stays 256. Scale is
// preserved and precision grows to the landing width's capacity.
func (d *Descriptor) Promote() *Descriptor {
	w := Width256
	if d.width <= Width128 {
		w = Width128
	}

	return &Descriptor{
		width:     w,
		precision: w.MaxPrecision(),
		scale:     d.scale,
	}
}
