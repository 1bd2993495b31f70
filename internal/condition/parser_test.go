package condition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Leaf(t *testing.T) {
	t.Run("bare name defaults to exactly one", func(t *testing.T) {
		c, err := Parse("CardA")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly}, c)
	})

	t.Run("plus quantity means at least", func(t *testing.T) {
		c, err := Parse("3+ CardA")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "CardA", Quantity: 3, Operator: OpAtLeast}, c)
	})

	t.Run("bare quantity means exactly", func(t *testing.T) {
		c, err := Parse("2 CardA")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "CardA", Quantity: 2, Operator: OpExactly}, c)
	})

	t.Run("multi-word names keep their spaces", func(t *testing.T) {
		c, err := Parse("2+ Dark Magician")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "Dark Magician", Quantity: 2, Operator: OpAtLeast}, c)
	})

	t.Run("leading digits without a space stay part of the name", func(t *testing.T) {
		c, err := Parse("7th Street")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "7th Street", Quantity: 1, Operator: OpExactly}, c)
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		c, err := Parse("0 CardA")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "CardA", Quantity: 0, Operator: OpExactly}, c)
	})
}

func TestParse_Connectives(t *testing.T) {
	t.Run("AND joins left-associatively at one level", func(t *testing.T) {
		c, err := Parse("CardA AND CardB AND CardC")
		assert.NoError(t, err)
		assert.Equal(t, And{Children: []Condition{
			Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly},
			Leaf{CardName: "CardB", Quantity: 1, Operator: OpExactly},
			Leaf{CardName: "CardC", Quantity: 1, Operator: OpExactly},
		}}, c)
	})

	t.Run("nested groups keep their shape", func(t *testing.T) {
		c, err := Parse("(CardA AND CardB) OR CardC")
		assert.NoError(t, err)
		assert.Equal(t, Or{Children: []Condition{
			And{Children: []Condition{
				Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly},
				Leaf{CardName: "CardB", Quantity: 1, Operator: OpExactly},
			}},
			Leaf{CardName: "CardC", Quantity: 1, Operator: OpExactly},
		}}, c)
	})

	t.Run("keywords are case-insensitive", func(t *testing.T) {
		c, err := Parse("CardA and CardB")
		assert.NoError(t, err)
		assert.Equal(t, And{Children: []Condition{
			Leaf{CardName: "CardA", Quantity: 1, Operator: OpExactly},
			Leaf{CardName: "CardB", Quantity: 1, Operator: OpExactly},
		}}, c)
	})

	t.Run("names containing keyword letters are not split", func(t *testing.T) {
		c, err := Parse("Sandy ORANGE Grove")
		assert.NoError(t, err)
		assert.Equal(t, Leaf{CardName: "Sandy ORANGE Grove", Quantity: 1, Operator: OpExactly}, c)
	})

	t.Run("group can follow a connective without a space", func(t *testing.T) {
		c, err := Parse("CardA OR(CardB AND CardC)")
		assert.NoError(t, err)
		or, ok := c.(Or)
		assert.True(t, ok)
		assert.Len(t, or.Children, 2)
	})
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"mixed connectives without parens", "CardA AND CardB OR CardC"},
		{"unbalanced open paren", "(CardA AND CardB"},
		{"unbalanced close paren", "CardA)"},
		{"empty group", "()"},
		{"empty input", ""},
		{"blank input", "   "},
		{"dangling connective", "CardA AND"},
		{"leading connective", "AND CardA"},
		{"malformed quantity", "3+CardA"},
		{"quantity without a name", "2 "},
		{"group glued to a name", "CardA (CardB OR CardC)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
		})
	}
}

func TestParse_ErrorPositions(t *testing.T) {
	_, err := Parse("CardA AND CardB OR CardC")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Pos != 16 {
		t.Errorf("expected offset of the OR keyword (16), got %d", perr.Pos)
	}
}
