package dictionary

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
)

//go:generate mockgen -source=source.go -destination=../mocks/dictionary/mock_source.go -package=mock_dictionary

// Source loads a phrase dictionary.
type Source interface {
	Load(ctx context.Context) (*Dictionary, error)
}

//go:embed data/phrases.txt
var embeddedPhrases []byte

// EmbeddedSource loads the phrase list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(_ context.Context) (*Dictionary, error) {
	d, err := Parse(bytes.NewReader(embeddedPhrases))
	if err != nil {
		return nil, fmt.Errorf("Parse(embedded) > %w", err)
	}
	return d, nil
}

// FileSource loads a dictionary file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Dictionary, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	d, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s) > %w", s.Path, err)
	}
	return d, nil
}

// DBSource loads every phrase stored in the database.
type DBSource struct {
	Repository PhraseRepository
}

func (s DBSource) Load(ctx context.Context) (*Dictionary, error) {
	entries, err := s.Repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("Repository.FindAll > %w", err)
	}
	return New(entries...), nil
}
