// Package sim ties the deck and condition models together behind the load,
// save and convert operations the CLI and HTTP API share.
package sim

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CodeFatherG/YugiohProbabilitySim/internal/catalog"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/condition"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/deck"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/ydk"
)

// ValidationError reports a structurally invalid simulation document.
// It is raised before any model value is constructed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Input pairs a built deck with its parsed conditions, one per document line.
type Input struct {
	Deck       deck.Deck
	Conditions []condition.Condition
}

// Document is the on-disk YAML shape an Input serializes to.
type Document struct {
	Deck       map[string]deck.CardEntry `yaml:"deck"`
	Conditions []string                  `yaml:"conditions"`
}

// Facade is the single load/save entry point shared across the application.
// Construct one at startup and inject it; it carries no state an operation
// reads to decide behavior.
type Facade struct {
	// LastLoaded caches the most recent successful load for display
	// convenience only.
	LastLoaded *Input
}

func New() *Facade {
	return &Facade{}
}

// wrap is the one failure envelope for the whole load path.
func wrap(artifact string, err error) error {
	return fmt.Errorf("Failed to parse %s: %w", artifact, err)
}

// Load parses a YAML simulation document, validates its shape, builds the
// deck and parses every condition line. Any failure aborts the whole load;
// a partial Input is never returned.
func (f *Facade) Load(text string) (*Input, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, wrap("simulation input", err)
	}

	entries, condLines, err := validateDocument(raw)
	if err != nil {
		return nil, wrap("simulation input", err)
	}

	d, err := deck.Build(entries)
	if err != nil {
		return nil, wrap("deck", err)
	}

	conds := make([]condition.Condition, 0, len(condLines))
	for _, line := range condLines {
		c, err := condition.Parse(line)
		if err != nil {
			return nil, wrap(fmt.Sprintf("condition %q", line), err)
		}
		conds = append(conds, c)
	}

	in := &Input{Deck: d, Conditions: conds}
	f.LastLoaded = in
	return in, nil
}

// Save serializes the deck and conditions into one merged YAML document.
func (f *Facade) Save(in *Input) (string, error) {
	lines, err := condition.SerializeAll(in.Conditions)
	if err != nil {
		return "", err
	}
	if lines == nil {
		lines = []string{}
	}
	out, err := yaml.Marshal(Document{
		Deck:       deck.ToMapping(in.Deck),
		Conditions: lines,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// LoadFromFile reads the file's text and delegates to Load. Read errors pass
// through unmodified.
func (f *Facade) LoadFromFile(ctx context.Context, path string) (*Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Load(string(b))
}

// ConvertYDK turns YDK passcode text into the YAML document form, resolving
// card names through the catalog.
func (f *Facade) ConvertYDK(ctx context.Context, text string, cat catalog.Catalog) (string, error) {
	out, err := ydk.Convert(ctx, text, cat)
	if err != nil {
		return "", wrap("ydk deck", err)
	}
	return out, nil
}

// validateDocument checks the document shape and lifts it into builder input.
// Every structural problem is fatal; nothing is defaulted or skipped.
func validateDocument(raw any) (map[string]deck.Entry, []string, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ValidationError{Msg: "top-level document must be a mapping"}
	}

	rawDeck, present := doc["deck"]
	if !present {
		return nil, nil, &ValidationError{Msg: "document has no deck mapping"}
	}
	deckMap, ok := rawDeck.(map[string]any)
	if !ok {
		return nil, nil, &ValidationError{Msg: "deck must be a mapping of card names, not a list"}
	}

	rawConds, present := doc["conditions"]
	if !present {
		return nil, nil, &ValidationError{Msg: "document has no conditions list"}
	}
	condList, ok := rawConds.([]any)
	if !ok && rawConds != nil {
		return nil, nil, &ValidationError{Msg: "conditions must be a list of strings"}
	}

	entries := make(map[string]deck.Entry, len(deckMap))
	for name, v := range deckMap {
		card, ok := v.(map[string]any)
		if !ok {
			return nil, nil, &ValidationError{Msg: fmt.Sprintf("card %q must be a mapping, not a list or scalar", name)}
		}
		qty, ok := intField(card["qty"])
		if !ok {
			return nil, nil, &ValidationError{Msg: fmt.Sprintf("card %q needs a numeric qty", name)}
		}
		tags, ok := stringListField(card["tags"])
		if !ok {
			return nil, nil, &ValidationError{Msg: fmt.Sprintf("card %q needs a tags list", name)}
		}
		free, _ := card["free"].(bool)
		entries[name] = deck.Entry{
			Qty:     qty,
			Tags:    tags,
			Details: deck.CardDetails{Free: free},
		}
	}

	lines := make([]string, 0, len(condList))
	for i, v := range condList {
		s, ok := v.(string)
		if !ok {
			return nil, nil, &ValidationError{Msg: fmt.Sprintf("condition %d must be a string", i)}
		}
		lines = append(lines, s)
	}
	return entries, lines, nil
}

func intField(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func stringListField(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
