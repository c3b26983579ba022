package decimal

import (
	"math/big"

	"github.com/calebcase/oops"
)

// ParseFromString converts a decimal literal into a value of this type.
//
// The literal may carry fewer fractional digits than the type's scale. The
// scanner runs at the literal's own scale and reports how many factor of
// ten steps remain; a single overflow checked multiply then brings the
// value up to the declared scale. Scanning first at the reduced scale
// bounds the intermediate magnitude so the overflow check stays one
// localized operation.
func (d *Descriptor) ParseFromString(text string) (_ Value, err error) {
	defer Error.WrapP(&err)

	raw, unread, err := scanDecimal(text, d.precision, d.scale)
	if err != nil {
		return Value{}, oops.Trace(err)
	}

	scaled, err := d.width.scaleUp(raw, unread)
	if err != nil {
		return Value{}, oops.Trace(err)
	}

	return Value{
		width: d.width,
		raw:   scaled,
	}, nil
}

// scanDecimal reads a signed decimal literal honoring the digit budget. It
// returns the scanned integer and the unread scale: how many additional
// factor of ten steps are needed to reach the declared scale.
func scanDecimal(text string, precision, scale uint32) (*big.Int, uint32, error) {
	s := text

	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var (
		digits    []byte
		seen      bool
		fraction  uint32
		pointSeen bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			seen = true

			// Leading zeros carry no significance and do not
			// count against the budget.
			if len(digits) == 0 && c == '0' && !pointSeen {
				continue
			}

			digits = append(digits, c)

			if pointSeen {
				fraction++
			}
		case c == '.':
			if pointSeen {
				return nil, 0, MalformedInputError.New(
					"unexpected character %q in %q",
					c,
					text,
				)
			}

			pointSeen = true
		default:
			return nil, 0, MalformedInputError.New(
				"unexpected character %q in %q",
				c,
				text,
			)
		}
	}

	if !seen {
		return nil, 0, MalformedInputError.New(
			"no digits in %q",
			text,
		)
	}

	// Zeros in the fraction still count against the budget ("0.05" needs
	// two digits of precision); only zeros ahead of the integer part are
	// free.
	if uint32(len(digits)) > precision {
		return nil, 0, OverflowError.New(
			"too many digits in %q for precision %d",
			text,
			precision,
		)
	}

	if fraction > scale {
		return nil, 0, OverflowError.New(
			"too many digits after the decimal point in %q for scale %d",
			text,
			scale,
		)
	}

	raw := new(big.Int)
	if len(digits) > 0 {
		_, ok := raw.SetString(string(digits), 10)
		if !ok {
			return nil, 0, MalformedInputError.New(
				"invalid decimal %q",
				text,
			)
		}
	}

	if neg {
		raw.Neg(raw)
	}

	return raw, scale - fraction, nil
}
