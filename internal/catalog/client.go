package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// DefaultBaseURL is the public ygoprodeck card info endpoint.
const DefaultBaseURL = "https://db.ygoprodeck.com/api/v7/cardinfo.php"

// Client is a Catalog backed by the ygoprodeck HTTP API. Responses are
// cached for the lifetime of the client; the card database changes rarely
// enough that invalidation is not worth carrying.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu     sync.Mutex
	byID   map[int]CardInfo
	byName map[string]CardInfo
}

// NewClient returns a Client against the public API with a request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 12 * time.Second},
		byID:       make(map[int]CardInfo),
		byName:     make(map[string]CardInfo),
	}
}

func (c *Client) ByID(ctx context.Context, id int) (CardInfo, error) {
	c.mu.Lock()
	cached, ok := c.byID[id]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}
	info, err := c.fetch(ctx, url.Values{"id": {strconv.Itoa(id)}})
	if err != nil {
		return CardInfo{}, fmt.Errorf("passcode %d: %w", id, err)
	}
	c.store(info)
	return info, nil
}

func (c *Client) ByName(ctx context.Context, name string) (CardInfo, error) {
	c.mu.Lock()
	cached, ok := c.byName[name]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}
	info, err := c.fetch(ctx, url.Values{"name": {name}})
	if err != nil {
		return CardInfo{}, fmt.Errorf("card %q: %w", name, err)
	}
	c.store(info)
	return info, nil
}

func (c *Client) store(info CardInfo) {
	c.mu.Lock()
	c.byID[info.ID] = info
	c.byName[info.Name] = info
	c.mu.Unlock()
}

// apiCard mirrors the slice of the ygoprodeck response schema we consume.
type apiCard struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Race      string `json:"race"`
	Archetype string `json:"archetype"`
}

func (c *Client) fetch(ctx context.Context, params url.Values) (CardInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return CardInfo{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return CardInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusBadRequest {
		// the API answers 400 for unknown cards
		return CardInfo{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return CardInfo{}, fmt.Errorf("cardinfo API returned status %d", resp.StatusCode)
	}

	var body struct {
		Data []apiCard `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return CardInfo{}, fmt.Errorf("decoding cardinfo response: %w", err)
	}
	if len(body.Data) == 0 {
		return CardInfo{}, ErrNotFound
	}

	card := body.Data[0]
	info := CardInfo{ID: card.ID, Name: card.Name, Type: card.Type}
	if card.Archetype != "" {
		info.Tags = append(info.Tags, card.Archetype)
	}
	if card.Race != "" {
		info.Tags = append(info.Tags, card.Race)
	}
	return info, nil
}
