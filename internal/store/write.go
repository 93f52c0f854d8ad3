package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateDeck inserts a deck and returns its id. An empty category leaves the
// deck uncategorized.
func (s *Store) CreateDeck(ctx context.Context, title, category string) (int64, error) {
	return createDeck(ctx, s.db, title, category)
}

// AddCard appends a card to the end of deckID.
func (s *Store) AddCard(ctx context.Context, deckID int64, front, back string) (int64, error) {
	if err := deck.ValidateID(deckID); err != nil {
		return 0, err
	}
	return addCard(ctx, s.db, deckID, front, back)
}

// Import inserts every deck in f inside one transaction and returns the new
// deck ids in document order.
func (s *Store) Import(ctx context.Context, f *deck.ImportFile) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(f.Decks))
	for _, d := range f.Decks {
		id, err := createDeck(ctx, tx, d.Title, d.Category)
		if err != nil {
			return nil, err
		}
		for _, c := range d.Cards {
			if _, err := addCard(ctx, tx, id, c.Front, c.Back); err != nil {
				return nil, err
			}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return ids, nil
}

func createDeck(ctx context.Context, db execer, title, category string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("create deck: title is required")
	}

	var categoryID any
	if category = strings.TrimSpace(category); category != "" {
		id, err := ensureCategory(ctx, db, category)
		if err != nil {
			return 0, err
		}
		categoryID = id
	}

	query, args, err := sq.
		Insert("decks").
		Columns("title", "category_id").
		Values(title, categoryID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert deck: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert deck: %w", err)
	}
	return res.LastInsertId()
}

func ensureCategory(ctx context.Context, db execer, name string) (int64, error) {
	query, args, err := sq.Select("id").From("categories").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build category query: %w", err)
	}

	var id int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("scan category: %w", err)
	}

	query, args, err = sq.Insert("categories").Columns("name").Values(name).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert category: %w", err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return res.LastInsertId()
}

func addCard(ctx context.Context, db execer, deckID int64, front, back string) (int64, error) {
	if strings.TrimSpace(front) == "" {
		return 0, fmt.Errorf("add card: front is required")
	}

	query, args, err := sq.
		Select("COALESCE(MAX(position), -1) + 1").
		From("cards").
		Where(sq.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build position query: %w", err)
	}

	var position int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
		return 0, fmt.Errorf("next card position: %w", err)
	}

	query, args, err = sq.
		Insert("cards").
		Columns("deck_id", "position", "front", "back").
		Values(deckID, position, front, back).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert card: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY") {
			return 0, fmt.Errorf("deck %d: %w", deckID, deck.ErrNotFound)
		}
		return 0, fmt.Errorf("insert card: %w", err)
	}
	return res.LastInsertId()
}
