package condition

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders a condition tree back to canonical text. The output is
// semantically equivalent to what was parsed rather than byte-identical:
// keywords come out uppercase and every And/Or group is parenthesized.
func Serialize(c Condition) (string, error) {
	switch n := c.(type) {
	case Leaf:
		var b strings.Builder
		if n.Quantity != 1 || n.Operator != OpExactly {
			b.WriteString(strconv.Itoa(n.Quantity))
			if n.Operator == OpAtLeast {
				b.WriteByte('+')
			}
			b.WriteByte(' ')
		}
		b.WriteString(n.CardName)
		return b.String(), nil
	case And:
		return serializeGroup(n.Children, " AND ")
	case Or:
		return serializeGroup(n.Children, " OR ")
	default:
		return "", &SerializationError{Variant: fmt.Sprintf("%T", c)}
	}
}

// SerializeAll renders one condition per entry, preserving order.
func SerializeAll(conds []Condition) ([]string, error) {
	out := make([]string, 0, len(conds))
	for _, c := range conds {
		s, err := Serialize(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func serializeGroup(children []Condition, sep string) (string, error) {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		s, err := Serialize(child)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
