// Package fixp resolves type names into fixed point decimal type
// descriptors.
//
// The engine's schema and expression layers refer to types by name with
// literal arguments:
//
//  Decimal32(4)
//  Decimal(10, 2)
//  numeric(20)
//
// A Registry maps those names (case insensitively for the decimal family)
// to constructor functions. Resolving a name validates the arguments and
// yields a decimal.Descriptor, which then drives parsing, formatting,
// promotion, and serialization.
//
// The decimal family registers four exact width names, the generic name,
// and the SQL aliases:
//
//  | Name       | Arguments | Precision       | Scale |
//  |------------|-----------|-----------------|-------|
//  | Decimal32  | (S)       | 9               | S     |
//  | Decimal64  | (S)       | 18              | S     |
//  | Decimal128 | (S)       | 38              | S     |
//  | Decimal256 | (S)       | 76              | S     |
//  | Decimal    |           | 10              | 0     |
//  | Decimal    | (P)       | P               | 0     |
//  | Decimal    | (P, S)    | P               | S     |
//  | DEC        |           | alias of Decimal        |
//  | NUMERIC    |           | alias of Decimal        |
//  | FIXED      |           | alias of Decimal        |
//
// The generic name picks the smallest width whose digit capacity admits P.
//
// The default registry is populated once during package initialization.
// After that it is read only and safe for unsynchronized concurrent
// lookups. Registration of new names at runtime is not supported.
package fixp
