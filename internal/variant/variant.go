// Package variant enumerates every plausible pinyin of a text by combining
// the alternative readings of its heteronyms.
package variant

import (
	"strings"

	"github.com/at-ishikawa/pinyinsearch/internal/phonetic"
	"github.com/at-ishikawa/pinyinsearch/internal/reading"
)

// DefaultMaxVariants leaves the number of variants generated for one text
// uncapped.
const DefaultMaxVariants = 0

// Variant is one reading of a text, one syllable per character.
type Variant struct {
	Syllables []string
}

// Pinyin returns the syllables without separators.
func (v Variant) Pinyin() string {
	return strings.Join(v.Syllables, "")
}

// Spaced returns the syllables separated by one space.
func (v Variant) Spaced() string {
	return strings.Join(v.Syllables, " ")
}

// Initials returns the first letter of every syllable.
func (v Variant) Initials() string {
	return phonetic.Initials(v.Spaced())
}

// Expander generates variants from a fixed heteronym table.
type Expander struct {
	table       Table
	base        func(rune) string
	maxVariants int
}

// New creates an Expander. A nil table uses DefaultTable and a nil base uses
// reading.Default. A non-positive maxVariants generates every combination.
func New(table Table, base func(rune) string, maxVariants int) *Expander {
	if table == nil {
		table = DefaultTable()
	}
	if base == nil {
		base = reading.Default
	}
	if maxVariants < 0 {
		maxVariants = DefaultMaxVariants
	}
	return &Expander{
		table:       table,
		base:        base,
		maxVariants: maxVariants,
	}
}

// Contains reports whether text has at least one character of the table.
func (e *Expander) Contains(text string) bool {
	for _, r := range text {
		if _, ok := e.table[r]; ok {
			return true
		}
	}
	return false
}

// ReadingsFor returns the default reading of r followed by its table
// readings, without duplicates. Characters with no reading return nil.
func (e *Expander) ReadingsFor(r rune) []string {
	var readings []string
	seen := make(map[string]struct{})
	add := func(py string) {
		if py == "" {
			return
		}
		if _, ok := seen[py]; ok {
			return
		}
		seen[py] = struct{}{}
		readings = append(readings, py)
	}

	add(e.base(r))
	for _, py := range e.table[r] {
		add(py)
	}
	return readings
}

// Default returns the variant made of default readings only.
func (e *Expander) Default(text string) Variant {
	var syllables []string
	for _, r := range text {
		if py := e.base(r); py != "" {
			syllables = append(syllables, py)
		}
	}
	return Variant{Syllables: syllables}
}

// Expand returns the combinations of per-character readings, starting with
// the default variant. Texts without a heteronym yield the default variant
// only.
//
// Without a cap, or when the product of reading counts fits in it, every
// combination is returned in character order. Otherwise the variants closest
// to the default are kept: all variants with one alternate reading come
// before any with two, so each alternate of each character is represented as
// long as the cap allows one variant per alternate.
func (e *Expander) Expand(text string) []Variant {
	if !e.Contains(text) {
		return []Variant{e.Default(text)}
	}

	var positions [][]string
	total := 1
	for _, r := range text {
		readings := e.ReadingsFor(r)
		if len(readings) == 0 {
			continue
		}
		positions = append(positions, readings)
		if e.maxVariants > 0 && total <= e.maxVariants {
			total *= len(readings)
		}
	}

	var combinations [][]string
	if e.maxVariants <= 0 || total <= e.maxVariants {
		combinations = product(positions)
	} else {
		combinations = nearestToDefault(positions, e.maxVariants)
	}

	variants := make([]Variant, 0, len(combinations))
	seen := make(map[string]struct{}, len(combinations))
	for _, syllables := range combinations {
		v := Variant{Syllables: syllables}
		key := v.Spaced()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}

// product returns every combination with the first position most significant.
func product(positions [][]string) [][]string {
	combinations := [][]string{{}}
	for _, readings := range positions {
		next := make([][]string, 0, len(combinations)*len(readings))
		for _, prefix := range combinations {
			for _, py := range readings {
				syllables := make([]string, len(prefix), len(prefix)+1)
				copy(syllables, prefix)
				next = append(next, append(syllables, py))
			}
		}
		combinations = next
	}
	return combinations
}

// nearestToDefault returns up to limit combinations ordered by the number of
// positions that use an alternate reading. Index 0 of each position is the
// default reading.
func nearestToDefault(positions [][]string, limit int) [][]string {
	var combinations [][]string
	chosen := make([]int, len(positions))

	var walk func(i int, alternates int) bool
	walk = func(i int, alternates int) bool {
		if len(positions)-i < alternates {
			return true
		}
		if i == len(positions) {
			syllables := make([]string, len(positions))
			for j, index := range chosen {
				syllables[j] = positions[j][index]
			}
			combinations = append(combinations, syllables)
			return len(combinations) < limit
		}

		chosen[i] = 0
		if !walk(i+1, alternates) {
			return false
		}
		if alternates == 0 {
			return true
		}
		for index := 1; index < len(positions[i]); index++ {
			chosen[i] = index
			if !walk(i+1, alternates-1) {
				return false
			}
		}
		chosen[i] = 0
		return true
	}

	for alternates := 0; alternates <= len(positions); alternates++ {
		if !walk(0, alternates) {
			break
		}
	}
	return combinations
}
