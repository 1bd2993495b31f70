// Package ydk converts YDK deck exports (the numeric passcode lists produced
// by common deck editors) into the YAML simulation document form.
package ydk

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CodeFatherG/YugiohProbabilitySim/internal/catalog"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/deck"
)

// Convert resolves the #main section of a YDK export against the catalog and
// returns the YAML deck document with an empty conditions list. Extra and
// side sections are ignored: hands are only drawn from the main deck.
func Convert(ctx context.Context, text string, cat catalog.Catalog) (string, error) {
	counts := map[int]int{}
	var order []int

	inMain := true // files without section headers are treated as all-main
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!"):
			section := strings.ToLower(strings.TrimLeft(line, "#!"))
			if section == "main" {
				inMain = true
			} else if section == "extra" || section == "side" {
				inMain = false
			}
			continue
		}
		if !inMain {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %q is not a card passcode", i+1, line)
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	entries := make(map[string]deck.CardEntry, len(order))
	for _, id := range order {
		info, err := cat.ByID(ctx, id)
		if err != nil {
			return "", err
		}
		entry, ok := entries[info.Name]
		if !ok {
			tags := info.Tags
			if tags == nil {
				tags = []string{}
			}
			entry = deck.CardEntry{Tags: tags, Free: info.Free}
		}
		entry.Qty += counts[id]
		entries[info.Name] = entry
	}

	doc := struct {
		Deck       map[string]deck.CardEntry `yaml:"deck"`
		Conditions []string                  `yaml:"conditions"`
	}{Deck: entries, Conditions: []string{}}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
