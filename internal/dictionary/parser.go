package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/pinyinsearch/internal/phonetic"
)

// Parse reads the line format
//
//	phrase: syllable syllable ...   # optional comment
//
// Blank lines, comment lines and lines without a colon are skipped. Tone
// marks are stripped and ü is written as v.
func Parse(r io.Reader) (*Dictionary, error) {
	d := New()
	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reader.ReadString > %w", readErr)
		}
		if line != "" {
			lineNumber++
			if entry, ok := parseNumberedLine(lineNumber, line); ok {
				d.add(entry)
			}
		}
		if readErr != nil {
			break
		}
	}
	return d, nil
}

// maxLineLength bounds a dictionary line. Longer lines are skipped.
const maxLineLength = 64 * 1024

func parseNumberedLine(lineNumber int, line string) (PhraseEntry, bool) {
	if len(line) > maxLineLength {
		slog.Default().Debug("skip a dictionary line",
			slog.Int("line", lineNumber),
			slog.Int("length", len(line)),
		)
		return PhraseEntry{}, false
	}
	entry, ok, err := parseLine(line)
	if err != nil {
		slog.Default().Debug("skip a dictionary line",
			slog.Int("line", lineNumber),
			slog.Any("error", err),
		)
		return PhraseEntry{}, false
	}
	return entry, ok
}

func parseLine(line string) (PhraseEntry, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return PhraseEntry{}, false, nil
	}
	if i := strings.IndexByte(line, '#'); i > 0 {
		line = line[:i]
	}

	phrase, pinyin, found := strings.Cut(line, ":")
	if !found {
		return PhraseEntry{}, false, nil
	}
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return PhraseEntry{}, false, nil
	}

	spaced, err := phonetic.NormalizeSyllables(pinyin)
	if err != nil {
		return PhraseEntry{}, false, fmt.Errorf("phonetic.NormalizeSyllables(%s) > %w", pinyin, err)
	}
	if spaced == "" {
		return PhraseEntry{}, false, nil
	}
	return PhraseEntry{
		Phrase:           phrase,
		Pinyin:           strings.ReplaceAll(spaced, " ", ""),
		PinyinWithSpaces: spaced,
	}, true, nil
}

// Write renders entries in the format read by Parse.
func Write(w io.Writer, entries []PhraseEntry) error {
	bw := bufio.NewWriter(w)
	for _, entry := range entries {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", entry.Phrase, entry.PinyinWithSpaces); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bufio.Writer.Flush > %w", err)
	}
	return nil
}
