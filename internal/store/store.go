// Package store provides the SQLite-backed deck repository.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store implements deck.Repository on a SQLite database.
type Store struct {
	db *sql.DB
}

var _ deck.Repository = (*Store)(nil)

// Open opens the SQLite database at dbPath and applies pending migrations.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// SQLite allows one writer; serialize through a single connection.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// ListDecks returns every deck with its card count, ordered by id.
func (s *Store) ListDecks(ctx context.Context) ([]deck.Deck, error) {
	query, args, err := sq.
		Select("d.id", "d.title", "c.name", "COUNT(k.id)").
		From("decks d").
		LeftJoin("categories c ON c.id = d.category_id").
		LeftJoin("cards k ON k.deck_id = d.id").
		GroupBy("d.id").
		OrderBy("d.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	decks := []deck.Deck{}
	for rows.Next() {
		var (
			d        deck.Deck
			category sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Title, &category, &d.CardCount); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		d.Category = nullableString(category)
		decks = append(decks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return decks, nil
}

// Cards returns the deck detail for deckID. Cards are ordered by position,
// then by id.
func (s *Store) Cards(ctx context.Context, deckID int64) (*deck.Detail, error) {
	if err := deck.ValidateID(deckID); err != nil {
		return nil, err
	}

	query, args, err := sq.
		Select("d.title", "c.name").
		From("decks d").
		LeftJoin("categories c ON c.id = d.category_id").
		Where(sq.Eq{"d.id": deckID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deck query: %w", err)
	}

	var (
		detail   deck.Detail
		category sql.NullString
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&detail.Title, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deck %d: %w", deckID, deck.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan deck: %w", err)
	}
	detail.CategoryName = nullableString(category)

	query, args, err = sq.
		Select("id", "front", "back").
		From("cards").
		Where(sq.Eq{"deck_id": deckID}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cards query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	detail.Cards = []deck.CardRecord{}
	for rows.Next() {
		var c deck.CardRecord
		if err := rows.Scan(&c.ID, &c.Front, &c.Back); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		detail.Cards = append(detail.Cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return &detail, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
