package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/CodeFatherG/YugiohProbabilitySim/internal/catalog"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/condition"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/config"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/deck"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/sim"
)

// App holds what the handlers depend on.
type App struct {
	Facade  *sim.Facade
	Catalog catalog.Catalog
	Cfg     config.Config
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bodyText returns the request's document text. Uploaded files win over raw
// bodies so the browser file-input flow and curl both work.
func bodyText(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			return "", err
		}
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	s := c.Query(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// load parses a simulation document and echoes back its canonical form.
func (a *App) load(c *gin.Context) {
	text, err := bodyText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := a.Facade.Load(text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lines, err := condition.SerializeAll(in.Conditions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deck":       deck.ToMapping(in.Deck),
		"deck_size":  in.Deck.Len(),
		"conditions": lines,
	})
}

// run loads a document and estimates its condition probabilities.
func (a *App) run(c *gin.Context) {
	text, err := bodyText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := a.Facade.Load(text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	runner := sim.Runner{
		Trials:   queryInt(c, "trials", a.Cfg.Trials),
		HandSize: queryInt(c, "hand", a.Cfg.HandSize),
		Seed:     int64(queryInt(c, "seed", 0)),
	}
	res, err := runner.Run(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// convertYDK turns a YDK passcode list into the YAML document form.
func (a *App) convertYDK(c *gin.Context) {
	text, err := bodyText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := a.Facade.ConvertYDK(c.Request.Context(), text, a.Catalog)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", []byte(out))
}

// deckQR renders a share QR for an exported deck payload.
func (a *App) deckQR(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query parameter is required"})
		return
	}
	size := queryInt(c, "size", 400)
	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
