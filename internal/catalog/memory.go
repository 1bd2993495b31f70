package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Memory is a Catalog backed by in-process lookup tables. It doubles as the
// test seam for everything that needs card details.
type Memory struct {
	byID   map[int]CardInfo
	byName map[string]CardInfo
}

// NewMemory builds a memory catalog from a card list.
func NewMemory(cards []CardInfo) *Memory {
	m := &Memory{
		byID:   make(map[int]CardInfo, len(cards)),
		byName: make(map[string]CardInfo, len(cards)),
	}
	for _, c := range cards {
		m.byID[c.ID] = c
		m.byName[c.Name] = c
	}
	return m
}

func (m *Memory) ByID(ctx context.Context, id int) (CardInfo, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return CardInfo{}, fmt.Errorf("passcode %d: %w", id, ErrNotFound)
}

func (m *Memory) ByName(ctx context.Context, name string) (CardInfo, error) {
	if c, ok := m.byName[name]; ok {
		return c, nil
	}
	return CardInfo{}, fmt.Errorf("card %q: %w", name, ErrNotFound)
}

// LoadCSV reads a card list CSV with an id,name,type,tags,free header.
// Tags are slash-separated within their cell; "-" and blanks mean no tags.
func LoadCSV(path string) (*Memory, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var cards []CardInfo
	for i, row := range rows[1:] {
		idStr := get(row, "id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("csv %s row %d: bad id %q", path, i+2, idStr)
		}
		c := CardInfo{
			ID:   id,
			Name: get(row, "name"),
			Type: get(row, "type"),
			Tags: parseListCell(get(row, "tags")),
		}
		switch strings.ToLower(get(row, "free")) {
		case "true", "1", "yes":
			c.Free = true
		}
		cards = append(cards, c)
	}
	return NewMemory(cards), nil
}

func parseListCell(s string) []string {
	if s == "" || s == "-" {
		return nil
	}
	parts := strings.Split(s, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
