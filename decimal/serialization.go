package decimal

import "math/big"

// Serialization is the default column codec for a decimal type: unscaled
// values laid out as fixed width two's complement little endian integers.
type Serialization struct {
	width     Width
	precision uint32
	scale     uint32
}

// DefaultSerialization returns the column codec parametrized by this type.
func (d *Descriptor) DefaultSerialization() *Serialization {
	return &Serialization{
		width:     d.width,
		precision: d.precision,
		scale:     d.scale,
	}
}

// Precision returns the digit budget the codec was constructed with.
func (s *Serialization) Precision() uint32 {
	return s.precision
}

// Scale returns the scale the codec was constructed with.
func (s *Serialization) Scale() uint32 {
	return s.scale
}

// ByteSize returns the encoded size of one value.
func (s *Serialization) ByteSize() int {
	return int(s.width) / 8
}

// Encode lays out the value's unscaled integer.
func (s *Serialization) Encode(v Value) (_ []byte, err error) {
	defer Error.WrapP(&err)

	if v.width != s.width {
		return nil, Error.New(
			"cannot encode a Decimal%d value as Decimal%d",
			v.width,
			s.width,
		)
	}

	raw := v.BigInt()
	if raw.Sign() < 0 {
		// Two's complement: raw + 2^width.
		raw.Add(raw, new(big.Int).Lsh(big.NewInt(1), uint(s.width)))
	}

	size := s.ByteSize()
	be := raw.Bytes()
	if len(be) > size {
		return nil, OverflowError.New(
			"value does not fit in Decimal%d",
			s.width,
		)
	}

	data := make([]byte, size)
	copy(data[size-len(be):], be)

	// Reverse into little endian.
	for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}

	return data, nil
}

// Decode reads one value from data.
func (s *Serialization) Decode(data []byte) (_ Value, err error) {
	defer Error.WrapP(&err)

	size := s.ByteSize()
	if len(data) != size {
		return Value{}, Error.New(
			"expected %d bytes for Decimal%d, got %d",
			size,
			s.width,
			len(data),
		)
	}

	be := make([]byte, size)
	for i, b := range data {
		be[size-1-i] = b
	}

	raw := new(big.Int).SetBytes(be)

	// Top bit set means negative: subtract 2^width.
	if be[0]&0x80 != 0 {
		raw.Sub(raw, new(big.Int).Lsh(big.NewInt(1), uint(s.width)))
	}

	return Value{
		width: s.width,
		raw:   raw,
	}, nil
}
