package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := NewMemory([]CardInfo{
		{ID: 89631139, Name: "Blue-Eyes White Dragon", Type: "Normal Monster", Tags: []string{"Blue-Eyes", "Dragon"}},
	})

	t.Run("looks up by id and name", func(t *testing.T) {
		byID, err := m.ByID(context.Background(), 89631139)
		assert.NoError(t, err)
		byName, err := m.ByName(context.Background(), "Blue-Eyes White Dragon")
		assert.NoError(t, err)
		assert.Equal(t, byID, byName)
	})

	t.Run("misses report ErrNotFound", func(t *testing.T) {
		_, err := m.ByID(context.Background(), 1)
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = m.ByName(context.Background(), "No Such Card")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	csv := "id,name,type,tags,free\n" +
		"89631139,Blue-Eyes White Dragon,Normal Monster,Blue-Eyes/Dragon,\n" +
		"32807846,Reinforcement of the Army,Spell Card,Searcher,true\n" +
		"55144522,Pot of Greed,Spell Card,-,1\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	m, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}

	dragon, err := m.ByName(context.Background(), "Blue-Eyes White Dragon")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Blue-Eyes", "Dragon"}, dragon.Tags)
	assert.False(t, dragon.Free)

	rota, err := m.ByID(context.Background(), 32807846)
	assert.NoError(t, err)
	assert.True(t, rota.Free)

	pot, err := m.ByName(context.Background(), "Pot of Greed")
	assert.NoError(t, err)
	assert.Nil(t, pot.Tags)
	assert.True(t, pot.Free)
}

func TestClient(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("id") {
		case "89631139":
			w.Write([]byte(`{"data":[{"id":89631139,"name":"Blue-Eyes White Dragon","type":"Normal Monster","race":"Dragon","archetype":"Blue-Eyes"}]}`))
		default:
			http.Error(w, `{"error":"No card matching your query was found"}`, http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	t.Run("fetches and tags from archetype and race", func(t *testing.T) {
		info, err := c.ByID(context.Background(), 89631139)
		assert.NoError(t, err)
		assert.Equal(t, "Blue-Eyes White Dragon", info.Name)
		assert.Equal(t, []string{"Blue-Eyes", "Dragon"}, info.Tags)
	})

	t.Run("caches repeat lookups", func(t *testing.T) {
		before := calls
		_, err := c.ByID(context.Background(), 89631139)
		assert.NoError(t, err)
		_, err = c.ByName(context.Background(), "Blue-Eyes White Dragon")
		assert.NoError(t, err)
		assert.Equal(t, before, calls)
	})

	t.Run("maps API 400 to ErrNotFound", func(t *testing.T) {
		_, err := c.ByID(context.Background(), 42)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
