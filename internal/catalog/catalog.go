package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a passcode or name has no catalog record.
var ErrNotFound = errors.New("card not found")

// CardInfo is the catalog's record for one card.
type CardInfo struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Type string   `json:"type"`
	Tags []string `json:"tags,omitempty"`
	Free bool     `json:"free,omitempty"`
}

// Catalog resolves card details by passcode or by exact name.
type Catalog interface {
	ByID(ctx context.Context, id int) (CardInfo, error)
	ByName(ctx context.Context, name string) (CardInfo, error)
}
