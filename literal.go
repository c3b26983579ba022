package fixp

// LiteralKind is the kind of a constructor argument literal.
type LiteralKind uint8

// Literal kinds delivered by the expression parser.
const (
	LiteralUint LiteralKind = iota
	LiteralInt
	LiteralString
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralUint:
		return "uint"
	case LiteralInt:
		return "int"
	case LiteralString:
		return "string"
	}

	return "unknown"
}

// Literal is one constructor argument as produced by the engine's
// expression parser. Only the field matching Kind is meaningful.
type Literal struct {
	Kind LiteralKind

	Uint uint64
	Int  int64
	Str  string
}

// UintLiteral returns an unsigned integer literal.
func UintLiteral(v uint64) Literal {
	return Literal{Kind: LiteralUint, Uint: v}
}

// IntLiteral returns a signed integer literal.
func IntLiteral(v int64) Literal {
	return Literal{Kind: LiteralInt, Int: v}
}

// StringLiteral returns a string literal.
func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, Str: s}
}

// asUint returns the literal as an unsigned integer. Only unsigned
// literals qualify.
func (l Literal) asUint() (uint64, bool) {
	if l.Kind != LiteralUint {
		return 0, false
	}

	return l.Uint, true
}

// asNonNegative returns the literal as an unsigned integer, also accepting
// signed literals that are not negative.
func (l Literal) asNonNegative() (uint64, bool) {
	switch l.Kind {
	case LiteralUint:
		return l.Uint, true
	case LiteralInt:
		if l.Int < 0 {
			return 0, false
		}

		return uint64(l.Int), true
	}

	return 0, false
}
