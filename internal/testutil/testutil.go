// Package testutil provides shared test helpers for creating config files and
// dictionary and catalog fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/pinyinsearch/internal/catalog"
	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
)

// DefaultCandidates are written to the catalog unless WithCandidates is used.
var DefaultCandidates = []catalog.Candidate{
	{Name: "钥匙", Description: "keys"},
	{Name: "银行"},
	{Name: "土块"},
}

// ConfigOption configures optional fields when creating a config fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	strategy      string
	phrases       []dictionary.PhraseEntry
	candidates    []catalog.Candidate
	useFileSource bool
}

// WithStrategy sets engine.strategy.
func WithStrategy(strategy string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.strategy = strategy
	}
}

// WithPhraseFile writes phrases to a dictionary file and configures the file
// source to read it.
func WithPhraseFile(phrases ...dictionary.PhraseEntry) ConfigOption {
	return func(cfg *testConfig) {
		cfg.phrases = phrases
		cfg.useFileSource = true
	}
}

// WithCandidates replaces the catalog candidates.
func WithCandidates(candidates ...catalog.Candidate) ConfigOption {
	return func(cfg *testConfig) {
		cfg.candidates = candidates
	}
}

// SetupTestConfig creates a config file, a catalog and the dictionary cache
// directory under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		strategy:   "dictionary",
		candidates: DefaultCandidates,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cacheDirectory := filepath.Join(tmpDir, "dictionaries")
	require.NoError(t, os.MkdirAll(cacheDirectory, 0755))
	catalogPath := WriteCatalog(t, filepath.Join(tmpDir, "candidates.yml"), cfg.candidates...)

	var content strings.Builder
	fmt.Fprintf(&content, "engine:\n  strategy: %s\n", cfg.strategy)
	fmt.Fprintf(&content, "catalog:\n  path: %s\n", catalogPath)
	fmt.Fprintf(&content, "dictionary:\n  cache_directory: %s\n", cacheDirectory)
	if cfg.useFileSource {
		phrasePath := WritePhraseFile(t, filepath.Join(tmpDir, "phrases.txt"), cfg.phrases...)
		fmt.Fprintf(&content, "  source: file\n  path: %s\n", phrasePath)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content.String()), 0644))
	return cfgPath
}

// WriteCatalog writes a candidate catalog and returns its path.
func WriteCatalog(t *testing.T, path string, candidates ...catalog.Candidate) string {
	t.Helper()

	data, err := yaml.Marshal(catalog.Catalog{Candidates: candidates})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// WritePhraseFile writes entries in the dictionary line format and returns
// the path.
func WritePhraseFile(t *testing.T, path string, entries ...dictionary.PhraseEntry) string {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()
	require.NoError(t, dictionary.Write(file, entries))
	return path
}
