// Package engine transliterates Chinese text into pinyin and initials and
// answers whether a query matches a candidate name.
//
// An Engine owns its caches and phrase dictionary. It is not safe for
// concurrent use: the host calls it from a single goroutine or synchronizes
// externally. No public method returns an error or panics once the engine is
// constructed; failures degrade to empty results.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
	"github.com/at-ishikawa/pinyinsearch/internal/lru"
	"github.com/at-ishikawa/pinyinsearch/internal/phonetic"
	"github.com/at-ishikawa/pinyinsearch/internal/reading"
	"github.com/at-ishikawa/pinyinsearch/internal/search"
	"github.com/at-ishikawa/pinyinsearch/internal/segment"
	"github.com/at-ishikawa/pinyinsearch/internal/variant"
)

const DefaultCacheCapacity = 4096

type Options struct {
	Strategy              Strategy
	MaxPhraseLength       int
	PinyinCacheCapacity   int
	InitialsCacheCapacity int
	MaxVariants           int
	// Source is only used by StrategyDictionary. A nil Source leaves the
	// dictionary empty.
	Source dictionary.Source
	// VariantTable overrides the built-in heteronym table.
	VariantTable variant.Table
	// BaseReading overrides the per-character reading table.
	BaseReading func(rune) string
}

func DefaultOptions() Options {
	return Options{
		Strategy:              StrategyDictionary,
		MaxPhraseLength:       segment.DefaultMaxPhraseLength,
		PinyinCacheCapacity:   DefaultCacheCapacity,
		InitialsCacheCapacity: DefaultCacheCapacity,
		MaxVariants:           variant.DefaultMaxVariants,
		Source:                dictionary.EmbeddedSource{},
	}
}

type Engine struct {
	options Options

	initialized   bool
	dictionary    *dictionary.Dictionary
	pinyinCache   *lru.Cache[string, string]
	initialsCache *lru.Cache[string, string]
	segmenter     *segment.Matcher
	expander      *variant.Expander
	matcher       *search.Matcher
}

// Stats describes the state of an engine.
type Stats struct {
	Initialized       bool
	Strategy          Strategy
	DictionaryPhrases int
	PinyinCached      int
	InitialsCached    int
}

// New validates options and returns an uninitialized engine.
func New(options Options) (*Engine, error) {
	if !options.Strategy.valid() {
		return nil, fmt.Errorf("invalid strategy: %q", options.Strategy)
	}
	if options.PinyinCacheCapacity <= 0 {
		return nil, fmt.Errorf("pinyin cache > %w", lru.ErrInvalidCapacity)
	}
	if options.InitialsCacheCapacity <= 0 {
		return nil, fmt.Errorf("initials cache > %w", lru.ErrInvalidCapacity)
	}
	if options.BaseReading == nil {
		options.BaseReading = reading.Default
	}
	return &Engine{options: options}, nil
}

// Initialize allocates the caches and loads the phrase dictionary. Calling it
// again is a no-op. A dictionary that cannot be loaded is replaced by an empty
// one and reported as a warning.
func (e *Engine) Initialize(ctx context.Context) error {
	if e.initialized {
		return nil
	}

	pinyinCache, err := lru.New[string, string](e.options.PinyinCacheCapacity)
	if err != nil {
		return fmt.Errorf("pinyin cache > %w", err)
	}
	initialsCache, err := lru.New[string, string](e.options.InitialsCacheCapacity)
	if err != nil {
		return fmt.Errorf("initials cache > %w", err)
	}

	e.pinyinCache = pinyinCache
	e.initialsCache = initialsCache
	switch e.options.Strategy {
	case StrategyVariant:
		e.expander = variant.New(e.options.VariantTable, e.options.BaseReading, e.options.MaxVariants)
		e.matcher = search.NewMatcher(e, e)
	default:
		e.dictionary = e.loadDictionary(ctx)
		e.segmenter = segment.New(e.dictionary, e.options.BaseReading, e.options.MaxPhraseLength)
		e.matcher = search.NewMatcher(e, nil)
	}
	e.initialized = true

	slog.Default().Debug("engine initialized",
		slog.String("strategy", e.options.Strategy.String()),
		slog.Int("phrases", e.dictionary.Len()),
	)
	return nil
}

func (e *Engine) loadDictionary(ctx context.Context) (d *dictionary.Dictionary) {
	if e.options.Source == nil {
		return dictionary.New()
	}
	source := fmt.Sprintf("%T", e.options.Source)
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Warn("failed to load phrase dictionary, using per-character readings",
				slog.String("source", source),
				slog.Any("panic", r),
			)
			d = dictionary.New()
		}
	}()

	d, err := e.options.Source.Load(ctx)
	if err != nil || d == nil {
		slog.Default().Warn("failed to load phrase dictionary, using per-character readings",
			slog.String("source", source),
			slog.Any("error", err),
		)
		return dictionary.New()
	}
	return d
}

// Teardown releases the caches and the dictionary. The engine can be
// initialized again afterwards.
func (e *Engine) Teardown() {
	if e.pinyinCache != nil {
		e.pinyinCache.Clear()
	}
	if e.initialsCache != nil {
		e.initialsCache.Clear()
	}
	e.pinyinCache = nil
	e.initialsCache = nil
	e.dictionary = nil
	e.segmenter = nil
	e.expander = nil
	e.matcher = nil
	e.initialized = false
}

// Initialized reports whether Initialize has run since the last Teardown.
func (e *Engine) Initialized() bool {
	return e.initialized
}

func (e *Engine) Stats() Stats {
	stats := Stats{
		Initialized:       e.initialized,
		Strategy:          e.options.Strategy,
		DictionaryPhrases: e.dictionary.Len(),
	}
	if e.pinyinCache != nil {
		stats.PinyinCached = e.pinyinCache.Len()
	}
	if e.initialsCache != nil {
		stats.InitialsCached = e.initialsCache.Len()
	}
	return stats
}

// Dictionary returns the loaded phrase dictionary, or nil.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dictionary
}

func recovered(operation string, text string, r any) {
	slog.Default().Error("recovered from a failure",
		slog.String("operation", operation),
		slog.String("text", text),
		slog.Any("panic", r),
	)
}

// Pinyin returns the pinyin of text without separators.
func (e *Engine) Pinyin(text string) (result string) {
	if text == "" || !e.initialized {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("pinyin", text, r)
			result = ""
		}
	}()

	if py, ok := e.pinyinCache.Get(text); ok {
		return py
	}
	py := e.pinyin(text)
	e.pinyinCache.Set(text, py)
	return py
}

func (e *Engine) pinyin(text string) string {
	if e.options.Strategy == StrategyVariant {
		return e.expander.Default(text).Pinyin()
	}
	if py, ok := e.dictionary.TryGetPinyin(text); ok {
		return py
	}
	return e.segmenter.Concat(text)
}

// Initials returns the first letter of every syllable of text.
func (e *Engine) Initials(text string) (result string) {
	if text == "" || !e.initialized {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("initials", text, r)
			result = ""
		}
	}()

	if initials, ok := e.initialsCache.Get(text); ok {
		return initials
	}
	initials := e.initials(text)
	e.initialsCache.Set(text, initials)
	return initials
}

func (e *Engine) initials(text string) string {
	if e.options.Strategy == StrategyVariant {
		return e.expander.Default(text).Initials()
	}
	if spaced, ok := e.dictionary.TryGetPinyinWithSpaces(text); ok {
		return phonetic.Initials(spaced)
	}
	return phonetic.Initials(e.segmenter.Spaced(text))
}

// HasVariants reports whether text contains a heteronym whose readings are
// enumerated. It is always false for StrategyDictionary.
func (e *Engine) HasVariants(text string) (result bool) {
	if !e.initialized || e.expander == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("has variants", text, r)
			result = false
		}
	}()
	return e.expander.Contains(text)
}

// Variants returns every reading of text generated from the heteronym table.
// It is nil for StrategyDictionary.
func (e *Engine) Variants(text string) (result []variant.Variant) {
	if text == "" || !e.initialized || e.expander == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("variants", text, r)
			result = nil
		}
	}()
	return e.expander.Expand(text)
}

// Matches reports whether query matches the pinyin or initials of
// candidateName.
func (e *Engine) Matches(candidateName string, query string) (result bool) {
	if !e.initialized {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("matches", candidateName, r)
			result = false
		}
	}()
	return e.matcher.Matches(candidateName, query)
}

// Filter returns the candidates matching query in their original order.
func (e *Engine) Filter(candidates []string, query string) (result []string) {
	if !e.initialized {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			recovered("filter", query, r)
			result = nil
		}
	}()
	return e.matcher.Filter(candidates, query)
}

// Warmup fills the caches for every candidate.
func (e *Engine) Warmup(candidates []string) {
	for _, candidate := range candidates {
		e.Pinyin(candidate)
		e.Initials(candidate)
	}
}
