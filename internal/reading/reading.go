// Package reading is the base per-character pronunciation table.
//
// Han characters use the default go-pinyin reading in plain style (no tone
// marks, ü written as v). Other letters and digits stand for themselves.
package reading

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var args = pinyin.NewArgs()

// IsHan reports whether r is a CJK ideograph.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// ContainsHan reports whether text has at least one CJK ideograph.
func ContainsHan(text string) bool {
	for _, r := range text {
		if IsHan(r) {
			return true
		}
	}
	return false
}

// Default returns the default reading of r. Whitespace has no reading and
// yields the empty string.
func Default(r rune) string {
	if unicode.IsSpace(r) {
		return ""
	}
	if IsHan(r) {
		if readings := pinyin.SinglePinyin(r, args); len(readings) > 0 && readings[0] != "" {
			return readings[0]
		}
	}
	return string(unicode.ToLower(r))
}

// Transliterate joins the default readings of every character in text with
// sep. Characters without a reading are skipped.
func Transliterate(text string, sep string) string {
	return TransliterateWith(text, sep, Default)
}

// TransliterateWith is Transliterate with a custom reading function.
func TransliterateWith(text string, sep string, read func(rune) string) string {
	var b strings.Builder
	for _, r := range text {
		py := read(r)
		if py == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(py)
	}
	return b.String()
}
