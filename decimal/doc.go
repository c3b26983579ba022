// Package decimal provides the fixed point base 10 numeric types of the
// engine.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is the fixed point number, value is an unscaled integer, and
// scale is the count of digits to the right of the decimal point. For
// example:
//
//  1.23 = 123 * 10^-2
//
// A type is described by a Descriptor with three parameters:
//
//  width     bit width of the signed integer storing the unscaled value
//  precision total count of significant decimal digits
//  scale     count of digits after the decimal point
//
// Four storage widths are supported. Each width fixes the largest precision
// it can hold:
//
//  | Width | Max Precision |
//  |-------|---------------|
//  | 32    | 9             |
//  | 64    | 18            |
//  | 128   | 38            |
//  | 256   | 76            |
//
// Descriptors are immutable and safe to share across goroutines. Two
// descriptors describe the same value class when their width and scale
// match; precision only limits how many digits parsing will accept and is
// deliberately excluded from equality.
//
// Values are unscaled integers bound to a width. They are produced by
// parsing text, by NewValue, or by decoding the default serialization, and
// are immutable once produced. Arithmetic over values belongs to the
// expression layer, not to this package.
package decimal
