// Package dictionary holds the phrase dictionary used to resolve heteronyms by
// exact phrase match.
package dictionary

import (
	"sort"
	"unicode/utf8"
)

// PhraseEntry is the correct pinyin of a multi-character phrase.
type PhraseEntry struct {
	Phrase string `db:"phrase" yaml:"phrase"`
	// Pinyin has no separators, e.g. "yaoshi".
	Pinyin string `db:"pinyin" yaml:"pinyin"`
	// PinyinWithSpaces separates syllables with one space, e.g. "yao shi".
	PinyinWithSpaces string `db:"pinyin_with_spaces" yaml:"pinyin_with_spaces"`
}

// Dictionary is a read-only phrase to pinyin mapping.
type Dictionary struct {
	entries   map[string]PhraseEntry
	maxLength int
}

// New builds a dictionary from entries. When a phrase repeats, the first
// entry wins.
func New(entries ...PhraseEntry) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]PhraseEntry, len(entries)),
	}
	for _, entry := range entries {
		d.add(entry)
	}
	return d
}

func (d *Dictionary) add(entry PhraseEntry) bool {
	if entry.Phrase == "" {
		return false
	}
	if _, ok := d.entries[entry.Phrase]; ok {
		return false
	}
	d.entries[entry.Phrase] = entry
	if n := utf8.RuneCountInString(entry.Phrase); n > d.maxLength {
		d.maxLength = n
	}
	return true
}

// TryGetPinyin returns the concatenated pinyin of phrase.
func (d *Dictionary) TryGetPinyin(phrase string) (string, bool) {
	if d == nil {
		return "", false
	}
	entry, ok := d.entries[phrase]
	return entry.Pinyin, ok
}

// TryGetPinyinWithSpaces returns the space separated pinyin of phrase.
func (d *Dictionary) TryGetPinyinWithSpaces(phrase string) (string, bool) {
	if d == nil {
		return "", false
	}
	entry, ok := d.entries[phrase]
	return entry.PinyinWithSpaces, ok
}

func (d *Dictionary) Has(phrase string) bool {
	if d == nil {
		return false
	}
	_, ok := d.entries[phrase]
	return ok
}

// Len returns the number of phrases.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// MaxPhraseLength returns the length in characters of the longest phrase.
func (d *Dictionary) MaxPhraseLength() int {
	if d == nil {
		return 0
	}
	return d.maxLength
}

// Entries returns every entry sorted by phrase.
func (d *Dictionary) Entries() []PhraseEntry {
	if d == nil {
		return nil
	}
	entries := make([]PhraseEntry, 0, len(d.entries))
	for _, entry := range d.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Phrase < entries[j].Phrase
	})
	return entries
}
