package deck

// EmptyCardName marks a filler slot padding a deck out to full size.
// Filler never appears in serialized deck documents.
const EmptyCardName = "Empty Card"

// Size is the standard main-deck size hands are drawn from.
const Size = 40

// CardDetails carries catalog metadata attached to a card entry.
type CardDetails struct {
	// Free marks cards the player effectively gets for free each turn
	// (searchers, draw spells), used by condition authors via tags.
	Free bool `yaml:"free,omitempty" json:"free,omitempty"`
}

// Card is one slot in a deck list.
type Card struct {
	Name    string      `yaml:"name" json:"name"`
	Tags    []string    `yaml:"tags,omitempty" json:"tags,omitempty"`
	Details CardDetails `yaml:"details,omitempty" json:"details,omitempty"`
}

// IsFiller reports whether this slot is deck padding rather than a real card.
func (c Card) IsFiller() bool {
	return c.Name == EmptyCardName
}

func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
