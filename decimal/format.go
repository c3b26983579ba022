package decimal

import "strings"

// Format renders a value as a decimal literal with the point inserted per
// the type's scale. It is the inverse of ParseFromString up to trailing
// zeros.
func (d *Descriptor) Format(v Value) string {
	raw := v.BigInt()

	neg := raw.Sign() < 0
	if neg {
		raw.Neg(raw)
	}

	digits := raw.String()

	if d.scale == 0 {
		if neg {
			return "-" + digits
		}

		return digits
	}

	// Pad so there is at least one digit ahead of the point.
	if uint32(len(digits)) <= d.scale {
		digits = strings.Repeat("0", int(d.scale)-len(digits)+1) + digits
	}

	point := len(digits) - int(d.scale)
	out := digits[:point] + "." + digits[point:]

	if neg {
		return "-" + out
	}

	return out
}
