package condition

// Operator compares the number of copies of a card in hand against a quantity.
type Operator string

const (
	OpExactly Operator = "="
	OpAtLeast Operator = ">="
)

// Condition is a boolean predicate over a drawn hand. The variant set is
// closed: Leaf, And and Or are the only implementations, so consumers can
// dispatch with an exhaustive type switch.
type Condition interface {
	isCondition()
}

// Leaf tests that the hand holds Operator Quantity copies of CardName.
type Leaf struct {
	CardName string
	Quantity int
	Operator Operator
}

// And holds when every child holds. The parser never produces fewer than
// two children.
type And struct {
	Children []Condition
}

// Or holds when at least one child holds. The parser never produces fewer
// than two children.
type Or struct {
	Children []Condition
}

func (Leaf) isCondition() {}
func (And) isCondition()  {}
func (Or) isCondition()   {}
