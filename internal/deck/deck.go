// Package deck defines decks, cards and the repository contract that the
// study screens consume.
package deck

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no deck exists for the requested id.
	ErrNotFound = errors.New("deck not found")

	// ErrInvalidID is returned for deck ids that are not positive.
	ErrInvalidID = errors.New("invalid deck id")
)

// Deck is the summary of a deck shown on the home screen.
type Deck struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Category  *string `json:"category_name"`
	CardCount int     `json:"card_count"`
}

// CardRecord is a card as stored and transmitted. IDs are integers here;
// the study session normalizes them to strings.
type CardRecord struct {
	ID    int64  `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Detail is the full deck payload: title, optional category and the
// ordered card list.
type Detail struct {
	Title        string       `json:"title"`
	CategoryName *string      `json:"category_name"`
	Cards        []CardRecord `json:"cards"`
}

// Repository is the deck storage collaborator.
type Repository interface {
	// ListDecks returns every deck ordered by id.
	ListDecks(ctx context.Context) ([]Deck, error)

	// Cards returns the deck detail for deckID. Card order is fixed by the
	// repository and must not be changed by callers.
	Cards(ctx context.Context, deckID int64) (*Detail, error)
}

// ValidateID returns ErrInvalidID if id is not a positive integer.
func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

// CategoryLabel returns the category name or an empty string.
func (d Detail) CategoryLabel() string {
	if d.CategoryName == nil {
		return ""
	}
	return *d.CategoryName
}
