package deckapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

// maxResponseBytes bounds the body read from the deck server.
const maxResponseBytes = 8 << 20

// Client is a deck.Repository backed by a remote deck server.
type Client struct {
	baseURL string
	http    *http.Client
	maxBody int64
}

var _ deck.Repository = (*Client)(nil)

// NewClient returns a Client for baseURL. timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("remote url %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		maxBody: maxResponseBytes,
	}, nil
}

// ListDecks fetches GET /api/decks.
func (c *Client) ListDecks(ctx context.Context) ([]deck.Deck, error) {
	var decks []deck.Deck
	if err := c.get(ctx, "/api/decks", &decks); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// Cards fetches GET /api/decks/{id}/cards.
func (c *Client) Cards(ctx context.Context, deckID int64) (*deck.Detail, error) {
	if err := deck.ValidateID(deckID); err != nil {
		return nil, err
	}

	var detail deck.Detail
	path := "/api/decks/" + strconv.FormatInt(deckID, 10) + "/cards"
	if err := c.get(ctx, path, &detail); err != nil {
		return nil, fmt.Errorf("deck %d: %w", deckID, err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, c.maxBody)

	if resp.StatusCode != http.StatusOK {
		// Only the deck server's own JSON errors carry deck semantics; a bare
		// 404 means the path does not exist on that host.
		var e errorBody
		_ = json.NewDecoder(body).Decode(&e)
		switch {
		case e.Error == "":
			return fmt.Errorf("server returned %d for %s", resp.StatusCode, path)
		case resp.StatusCode == http.StatusNotFound:
			return deck.ErrNotFound
		case resp.StatusCode == http.StatusBadRequest:
			return deck.ErrInvalidID
		default:
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, e.Error)
		}
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
