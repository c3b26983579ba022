package decimal

import "math/big"

// Value is the unscaled integer backing one decimal number. The number it
// denotes is value * 10^-scale for the scale of the descriptor it was
// produced under.
type Value struct {
	width Width
	raw   *big.Int
}

// NewValue returns a value holding raw in the given width.
func NewValue(width Width, raw *big.Int) (_ Value, err error) {
	defer Error.WrapP(&err)

	if !width.valid() {
		return Value{}, Error.New("unsupported width: %d", width)
	}

	if !width.inRange(raw) {
		return Value{}, OverflowError.New(
			"value does not fit in Decimal%d",
			width,
		)
	}

	return Value{
		width: width,
		raw:   new(big.Int).Set(raw),
	}, nil
}

// Width returns the storage width the value is bound to.
func (v Value) Width() Width {
	return v.width
}

// BigInt returns a copy of the unscaled integer.
func (v Value) BigInt() *big.Int {
	if v.raw == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(v.raw)
}

// Int64 returns the unscaled integer when it fits in 64 bits.
func (v Value) Int64() (int64, bool) {
	if v.raw == nil {
		return 0, true
	}

	if !v.raw.IsInt64() {
		return 0, false
	}

	return v.raw.Int64(), true
}

// Sign returns -1, 0, or +1.
func (v Value) Sign() int {
	if v.raw == nil {
		return 0
	}

	return v.raw.Sign()
}

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool {
	return v.Sign() == 0
}
