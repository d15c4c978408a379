package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// PhraseRepository defines operations for managing stored phrase entries.
type PhraseRepository interface {
	FindAll(ctx context.Context) ([]PhraseEntry, error)
	Upsert(ctx context.Context, entry *PhraseEntry) error
}

// DBPhraseRepository implements PhraseRepository using MySQL.
type DBPhraseRepository struct {
	db *sqlx.DB
}

// NewDBPhraseRepository creates a new DBPhraseRepository.
func NewDBPhraseRepository(db *sqlx.DB) *DBPhraseRepository {
	return &DBPhraseRepository{db: db}
}

// FindAll returns all phrase entries.
func (r *DBPhraseRepository) FindAll(ctx context.Context) ([]PhraseEntry, error) {
	var entries []PhraseEntry
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT phrase, pinyin, pinyin_with_spaces FROM phrase_entries ORDER BY phrase"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(phrase_entries) > %w", err)
	}
	return entries, nil
}

// Upsert inserts or updates a phrase entry.
func (r *DBPhraseRepository) Upsert(ctx context.Context, entry *PhraseEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO phrase_entries (phrase, pinyin, pinyin_with_spaces)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE pinyin = VALUES(pinyin), pinyin_with_spaces = VALUES(pinyin_with_spaces)`,
		entry.Phrase, entry.Pinyin, entry.PinyinWithSpaces)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert phrase_entry) > %w", err)
	}
	return nil
}
