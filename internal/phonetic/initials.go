package phonetic

import (
	"strings"
	"unicode"
)

// IsVowel reports whether r is a pinyin vowel letter. v stands in for ü.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'v':
		return true
	}
	return false
}

// Initials returns the first letter of every syllable in a tone-free pinyin
// string such as "yao shi".
//
// The first character and the first character after whitespace always start a
// syllable. Inside a run of letters, a non-vowel that directly follows a vowel
// starts a new syllable unless it is a coda (n, ng or a final r), in which case
// the character after the coda does. An "er" closing a run after a vowel is
// its own syllable, so "nver" and "nv er" both give "ne". This is a
// heuristic: "xian" and "xi an" cannot be told apart without separators.
func Initials(pinyin string) string {
	s := []rune(pinyin)
	var b strings.Builder
	atStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unicode.IsSpace(c) {
			atStart = true
			continue
		}
		if atStart {
			b.WriteRune(c)
			atStart = false
			continue
		}
		if c == 'e' && IsVowel(s[i-1]) && isFinalEr(s, i) {
			b.WriteRune(c)
			continue
		}
		if !IsVowel(s[i-1]) || IsVowel(c) {
			continue
		}
		if n := codaLength(s, i); n > 0 {
			i += n - 1
			atStart = true
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// isFinalEr reports whether s[i:] starts with "er" followed by the end of the
// run.
func isFinalEr(s []rune, i int) bool {
	return i+1 < len(s) && s[i+1] == 'r' && (i+2 == len(s) || unicode.IsSpace(s[i+2]))
}

// codaLength returns the length of the syllable coda starting at i, or 0 when
// the consonant at i opens a new syllable.
//
// Skipping the coda is deliberate. Counting every consonant that follows a
// vowel would read "yin yue" as "yny". Only n, ng and a final r close a
// syllable.
func codaLength(s []rune, i int) int {
	closes := func(j int) bool {
		return j >= len(s) || !IsVowel(s[j])
	}
	switch s[i] {
	case 'n':
		if i+1 < len(s) && s[i+1] == 'g' {
			if closes(i + 2) {
				return 2
			}
			return 1
		}
		if closes(i + 1) {
			return 1
		}
	case 'r':
		if i+1 >= len(s) || unicode.IsSpace(s[i+1]) {
			return 1
		}
	}
	return 0
}
