package condition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize(t *testing.T) {
	t.Run("default leaf prints only the name", func(t *testing.T) {
		s, err := Serialize(Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly})
		assert.NoError(t, err)
		assert.Equal(t, "CardA", s)
	})

	t.Run("at-least leaf prints a plus", func(t *testing.T) {
		s, err := Serialize(Leaf{CardName: "CardA", Quantity: 3, Operator: OpAtLeast})
		assert.NoError(t, err)
		assert.Equal(t, "3+ CardA", s)
	})

	t.Run("exact leaf prints the bare quantity", func(t *testing.T) {
		s, err := Serialize(Leaf{CardName: "CardA", Quantity: 2, Operator: OpExactly})
		assert.NoError(t, err)
		assert.Equal(t, "2 CardA", s)
	})

	t.Run("groups are parenthesized and joined", func(t *testing.T) {
		c := Or{Children: []Condition{
			And{Children: []Condition{
				Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly},
				Leaf{CardName: "CardB", Quantity: 2, Operator: OpAtLeast},
			}},
			Leaf{CardName: "CardC", Quantity: 1, Operator: OpExactly},
		}}
		s, err := Serialize(c)
		assert.NoError(t, err)
		assert.Equal(t, "((CardA AND 2+ CardB) OR CardC)", s)
	})

	t.Run("single-child group is tolerated", func(t *testing.T) {
		s, err := Serialize(And{Children: []Condition{
			Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly},
		}})
		assert.NoError(t, err)
		assert.Equal(t, "(CardA)", s)
	})
}

// bogus stands in for a variant the serializer has never heard of.
type bogus struct{}

func (bogus) isCondition() {}

func TestSerialize_UnknownVariant(t *testing.T) {
	_, err := Serialize(bogus{})
	var serr *SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SerializationError, got %v", err)
	}

	_, err = Serialize(And{Children: []Condition{bogus{}}})
	if !errors.As(err, &serr) {
		t.Fatalf("expected nested *SerializationError, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"CardA",
		"2 CardA",
		"3+ CardA",
		"CardA AND CardB",
		"CardA OR CardB OR CardC",
		"(CardA AND CardB) OR CardC",
		"((2+ CardA OR CardB) AND 3 CardC) OR CardD",
		"0 CardA AND Dark Magician",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := Parse(in)
			assert.NoError(t, err)
			text, err := Serialize(first)
			assert.NoError(t, err)
			second, err := Parse(text)
			assert.NoError(t, err)
			assert.Equal(t, first, second, "round-trip changed the tree for %q (canonical %q)", in, text)
		})
	}
}
