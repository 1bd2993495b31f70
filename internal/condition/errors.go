package condition

import "fmt"

// ParseError reports condition text that does not match the grammar.
// Pos is a byte offset into the original input.
type ParseError struct {
	Reason string
	Pos    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Reason)
}

// SerializationError reports an unrecognized Condition variant. With the
// closed variant set this should be unreachable.
type SerializationError struct {
	Variant string
}

func (e *SerializationError) Error() string {
	return "cannot serialize unknown condition variant " + e.Variant
}
