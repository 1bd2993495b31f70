package sim

import (
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/condition"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/deck"
)

// Evaluate reports whether a drawn hand satisfies the condition. A leaf's
// card name matches a card by exact name or by one of its tags, so
// "2+ Dragon" can count every card tagged Dragon.
func Evaluate(c condition.Condition, hand []deck.Card) bool {
	switch n := c.(type) {
	case condition.Leaf:
		count := 0
		for _, card := range hand {
			if card.IsFiller() {
				continue
			}
			if card.Name == n.CardName || card.HasTag(n.CardName) {
				count++
			}
		}
		if n.Operator == condition.OpAtLeast {
			return count >= n.Quantity
		}
		return count == n.Quantity
	case condition.And:
		for _, child := range n.Children {
			if !Evaluate(child, hand) {
				return false
			}
		}
		return true
	case condition.Or:
		for _, child := range n.Children {
			if Evaluate(child, hand) {
				return true
			}
		}
		return false
	}
	// unreachable with the closed variant set
	return false
}
