package deck

import (
	"fmt"
	"sort"
)

// Deck is an ordered multiset of card entries, possibly padded with filler
// slots. Decks are immutable once built; consumers get copies of the list.
type Deck struct {
	cards []Card
}

// Entry describes one named card line of a deck document.
type Entry struct {
	Qty     int
	Tags    []string
	Details CardDetails
}

// Build expands a name -> entry mapping into an ordered Deck. Names are laid
// out in sorted order so repeated builds of the same mapping agree, and the
// deck is padded with filler slots up to the standard size when short.
// Oversized decks are kept as-is, never truncated.
func Build(entries map[string]Entry) (Deck, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var cards []Card
	for _, name := range names {
		e := entries[name]
		if e.Qty < 0 {
			return Deck{}, fmt.Errorf("card %q has negative quantity %d", name, e.Qty)
		}
		for i := 0; i < e.Qty; i++ {
			cards = append(cards, Card{Name: name, Tags: e.Tags, Details: e.Details})
		}
	}
	for len(cards) < Size {
		cards = append(cards, Card{Name: EmptyCardName})
	}
	return Deck{cards: cards}, nil
}

// List returns a copy of the deck in deck order, filler included.
func (d Deck) List() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len is the total slot count, filler included.
func (d Deck) Len() int {
	return len(d.cards)
}
