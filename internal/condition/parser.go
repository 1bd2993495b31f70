package condition

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a condition expression like "3+ Card A AND (Card B OR Card C)"
// into its tree form. Connective keywords are matched case-insensitively;
// card names are case-sensitive free text. Mixing AND and OR at one nesting
// level without parentheses is rejected rather than resolved by precedence.
func Parse(text string) (Condition, error) {
	p := &parser{input: text}
	c, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return nil, p.fail(p.pos, "unexpected trailing input %q", p.input[p.pos:])
	}
	return c, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) fail(pos int, format string, args ...any) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...), Pos: pos}
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// expr := term (("AND"|"OR") term)*, single connective kind per level.
func (p *parser) parseExpr() (Condition, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	children := []Condition{first}
	var connective string
	for {
		p.skipSpaces()
		kwPos := p.pos
		kw := p.connectiveAt(p.pos)
		if kw == "" {
			break
		}
		if connective == "" {
			connective = kw
		} else if kw != connective {
			return nil, p.fail(kwPos, "mixing AND and OR at one level requires parentheses")
		}
		p.pos += len(kw)
		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return first, nil
	}
	if connective == "AND" {
		return And{Children: children}, nil
	}
	return Or{Children: children}, nil
}

// term := "(" expr ")" | leaf
func (p *parser) parseTerm() (Condition, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, p.fail(p.pos, "expected a condition")
	}
	switch p.input[p.pos] {
	case '(':
		open := p.pos
		p.pos++
		p.skipSpaces()
		if p.pos < len(p.input) && p.input[p.pos] == ')' {
			return nil, p.fail(open, "empty group")
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, p.fail(open, "unbalanced parentheses")
		}
		p.pos++
		return inner, nil
	case ')':
		return nil, p.fail(p.pos, "expected a condition")
	}
	return p.parseLeaf()
}

// leaf := [quantity] cardName, where the name runs until a connective
// keyword, a paren, or end of input.
func (p *parser) parseLeaf() (Condition, error) {
	qty, op, err := p.parseQuantity()
	if err != nil {
		return nil, err
	}
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == ')' || ch == '(' {
			break
		}
		atWordStart := p.pos == start || p.input[p.pos-1] == ' '
		if atWordStart && p.connectiveAt(p.pos) != "" {
			break
		}
		p.pos++
	}
	name := strings.TrimSpace(p.input[start:p.pos])
	if name == "" {
		return nil, p.fail(start, "empty card name")
	}
	return Leaf{CardName: name, Quantity: qty, Operator: op}, nil
}

// parseQuantity consumes a leading "N " or "N+ " quantity spec. Bare digits
// glued straight onto text ("7th Street") stay part of the card name; a '+'
// without the trailing space is a malformed quantity.
func (p *parser) parseQuantity() (int, Operator, error) {
	i := p.pos
	for i < len(p.input) && p.input[i] >= '0' && p.input[i] <= '9' {
		i++
	}
	if i == p.pos {
		return 1, OpExactly, nil
	}
	j := i
	op := OpExactly
	if j < len(p.input) && p.input[j] == '+' {
		op = OpAtLeast
		j++
	}
	if j >= len(p.input) || p.input[j] != ' ' {
		if op == OpAtLeast {
			return 0, "", p.fail(p.pos, "malformed quantity %q", p.input[p.pos:j])
		}
		return 1, OpExactly, nil
	}
	n, err := strconv.Atoi(p.input[p.pos:i])
	if err != nil {
		return 0, "", p.fail(p.pos, "malformed quantity %q", p.input[p.pos:i])
	}
	p.pos = j + 1
	p.skipSpaces()
	return n, op, nil
}

// connectiveAt reports the canonical connective keyword starting at i, or "".
// Keywords match case-insensitively and must be followed by a space, an
// opening paren, or end of input so that names like "ORANGE" stay names.
func (p *parser) connectiveAt(i int) string {
	rest := p.input[i:]
	for _, kw := range [...]string{"AND", "OR"} {
		if len(rest) >= len(kw) && strings.EqualFold(rest[:len(kw)], kw) {
			tail := rest[len(kw):]
			if tail == "" || tail[0] == ' ' || tail[0] == '(' {
				return kw
			}
		}
	}
	return ""
}
