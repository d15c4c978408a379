// Package search decides whether a typed query matches a candidate name by
// its pinyin or its initials.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/at-ishikawa/pinyinsearch/internal/variant"
)

//go:generate mockgen -source=search.go -destination=../mocks/search/mock_search.go -package=mock_search

// Transliterator produces the romanized forms of a text.
type Transliterator interface {
	Pinyin(text string) string
	Initials(text string) string
}

// VariantProvider enumerates alternative readings of texts with heteronyms.
type VariantProvider interface {
	HasVariants(text string) bool
	Variants(text string) []variant.Variant
}

// Matcher tests queries against transliterated candidate names.
type Matcher struct {
	transliterator Transliterator
	variants       VariantProvider
}

// NewMatcher creates a Matcher. variants may be nil when alternative readings
// are not enumerated.
func NewMatcher(transliterator Transliterator, variants VariantProvider) *Matcher {
	return &Matcher{
		transliterator: transliterator,
		variants:       variants,
	}
}

// NormalizeQuery lower-cases query.
func NormalizeQuery(query string) string {
	return cases.Lower(language.Und).String(query)
}

// Matches reports whether query is a substring of the pinyin or the initials
// of name, or of any variant reading when variants are enumerated.
func (m *Matcher) Matches(name string, query string) bool {
	if name == "" || query == "" {
		return false
	}
	q := NormalizeQuery(query)

	if strings.Contains(m.transliterator.Pinyin(name), q) ||
		strings.Contains(m.transliterator.Initials(name), q) {
		return true
	}

	if m.variants == nil || !m.variants.HasVariants(name) {
		return false
	}
	for _, v := range m.variants.Variants(name) {
		if strings.Contains(v.Pinyin(), q) || strings.Contains(v.Initials(), q) {
			return true
		}
	}
	return false
}

// Filter returns the candidates matching query in their original order.
func (m *Matcher) Filter(candidates []string, query string) []string {
	var matched []string
	for _, candidate := range candidates {
		if m.Matches(candidate, query) {
			matched = append(matched, candidate)
		}
	}
	return matched
}
