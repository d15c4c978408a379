// Package segment transliterates text by greedy longest-match segmentation
// against a phrase dictionary.
package segment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/pinyinsearch/internal/reading"
)

// DefaultMaxPhraseLength bounds the window tried at each position.
const DefaultMaxPhraseLength = 4

// PhraseLookup finds the space separated pinyin of a phrase.
type PhraseLookup interface {
	TryGetPinyinWithSpaces(phrase string) (string, bool)
}

// Matcher walks text left to right. At each position it takes the longest
// dictionary phrase of at most maxLength characters, falling back to the base
// reading of a single character.
type Matcher struct {
	lookup    PhraseLookup
	base      func(rune) string
	maxLength int
}

// New creates a Matcher. A nil base uses reading.Default, and a maxLength
// below 2 uses DefaultMaxPhraseLength.
func New(lookup PhraseLookup, base func(rune) string, maxLength int) *Matcher {
	if base == nil {
		base = reading.Default
	}
	if maxLength < 2 {
		maxLength = DefaultMaxPhraseLength
	}
	return &Matcher{
		lookup:    lookup,
		base:      base,
		maxLength: maxLength,
	}
}

// Concat returns the pinyin of text without separators.
func (m *Matcher) Concat(text string) string {
	segments, err := m.segments(text)
	if err != nil {
		slog.Default().Debug("segmentation failed, falling back to base readings",
			slog.String("text", text),
			slog.Any("error", err),
		)
		return reading.TransliterateWith(text, "", m.base)
	}
	return strings.ReplaceAll(strings.Join(segments, ""), " ", "")
}

// Spaced returns the pinyin of text with one space between syllables. It is
// meant for initials extraction.
func (m *Matcher) Spaced(text string) string {
	segments, err := m.segments(text)
	if err != nil {
		slog.Default().Debug("segmentation failed, falling back to base readings",
			slog.String("text", text),
			slog.Any("error", err),
		)
		return reading.TransliterateWith(text, " ", m.base)
	}
	return strings.Join(segments, " ")
}

// segments returns the space separated pinyin of every matched segment.
func (m *Matcher) segments(text string) (segments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			segments = nil
			err = fmt.Errorf("segment %q: %v", text, r)
		}
	}()

	runes := []rune(text)
	for i := 0; i < len(runes); {
		matched := 0
		if m.lookup != nil {
			for length := min(m.maxLength, len(runes)-i); length >= 2; length-- {
				if py, ok := m.lookup.TryGetPinyinWithSpaces(string(runes[i : i+length])); ok {
					segments = append(segments, py)
					matched = length
					break
				}
			}
		}
		if matched > 0 {
			i += matched
			continue
		}

		if py := m.base(runes[i]); py != "" {
			segments = append(segments, py)
		}
		i++
	}
	return segments, nil
}
