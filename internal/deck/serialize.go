package deck

// CardEntry is the serialized form of one deck document line.
type CardEntry struct {
	Qty  int      `yaml:"qty" json:"qty"`
	Tags []string `yaml:"tags" json:"tags"`
	Free bool     `yaml:"free,omitempty" json:"free,omitempty"`
}

// ToMapping aggregates a deck back into its name -> entry document form.
// Filler slots are skipped; repeated names bump the quantity while the first
// occurrence decides tags and the free flag.
func ToMapping(d Deck) map[string]CardEntry {
	out := make(map[string]CardEntry)
	for _, c := range d.cards {
		if c.IsFiller() {
			continue
		}
		entry, seen := out[c.Name]
		if !seen {
			tags := c.Tags
			if tags == nil {
				tags = []string{}
			}
			out[c.Name] = CardEntry{Qty: 1, Tags: tags, Free: c.Details.Free}
			continue
		}
		entry.Qty++
		out[c.Name] = entry
	}
	return out
}
