package decimal

import (
	"fmt"
	"math/big"
)

// Width is the bit width of the signed integer backing a decimal type.
type Width uint16

// Supported storage widths.
const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
)

// Widths lists the supported widths from narrowest to widest.
var Widths = []Width{Width32, Width64, Width128, Width256}

// MaxPrecision returns the largest count of decimal digits the width can
// hold.
func (w Width) MaxPrecision() uint32 {
	switch w {
	case Width32:
		return 9
	case Width64:
		return 18
	case Width128:
		return 38
	case Width256:
		return 76
	}

	return 0
}

func (w Width) valid() bool {
	return w.MaxPrecision() != 0
}

func (w Width) String() string {
	return fmt.Sprintf("Decimal%d", uint16(w))
}

type bounds struct {
	min *big.Int
	max *big.Int
}

var (
	widthBounds map[Width]bounds

	// pow10 caches 10^n for every shift a 256 bit decimal can need
	// (up to its 76 digit capacity).
	pow10 [77]*big.Int
)

func init() {
	widthBounds = make(map[Width]bounds, len(Widths))

	one := big.NewInt(1)
	for _, w := range Widths {
		max := new(big.Int).Lsh(one, uint(w)-1)
		min := new(big.Int).Neg(max)
		max.Sub(max, one)

		widthBounds[w] = bounds{min: min, max: max}
	}

	ten := big.NewInt(10)
	x := big.NewInt(1)
	for i := range pow10 {
		pow10[i] = new(big.Int).Set(x)
		x = new(big.Int).Mul(x, ten)
	}
}

// inRange reports whether raw fits in the width's two's complement range.
func (w Width) inRange(raw *big.Int) bool {
	b, ok := widthBounds[w]
	if !ok {
		return false
	}

	return raw.Cmp(b.min) >= 0 && raw.Cmp(b.max) <= 0
}

// scaleUp returns raw * 10^shift, failing when the product leaves the
// width's range.
func (w Width) scaleUp(raw *big.Int, shift uint32) (*big.Int, error) {
	if int(shift) >= len(pow10) {
		return nil, OverflowError.New("Decimal math overflow")
	}

	z := new(big.Int).Mul(raw, pow10[shift])
	if !w.inRange(z) {
		return nil, OverflowError.New("Decimal math overflow")
	}

	return z, nil
}
