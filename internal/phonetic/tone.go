// Package phonetic normalizes romanized pinyin and derives syllable initials.
package phonetic

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// toneless maps each tone-marked vowel to its bare letter. ü with or without
// a tone mark becomes v, the conventional ASCII surrogate.
var toneless = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ü': 'v', 'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v',
}

var stripToneMarks = runes.Map(func(r rune) rune {
	if base, ok := toneless[r]; ok {
		return base
	}
	return r
})

// StripTones replaces tone-marked vowels with plain letters. Input in
// decomposed form is composed first so combining marks are handled too.
func StripTones(s string) (string, error) {
	result, _, err := transform.String(stripToneMarks, norm.NFC.String(s))
	if err != nil {
		return "", fmt.Errorf("transform.String > %w", err)
	}
	return result, nil
}

// NormalizeSyllables strips tones, lower-cases the result and collapses
// whitespace runs into single spaces.
func NormalizeSyllables(s string) (string, error) {
	stripped, err := StripTones(s)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " "), nil
}
