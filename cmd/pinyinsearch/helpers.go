package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/pinyinsearch/internal/config"
	"github.com/at-ishikawa/pinyinsearch/internal/database"
	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
	"github.com/at-ishikawa/pinyinsearch/internal/engine"
)

type sourceFlag config.SourceType

func (s *sourceFlag) Set(val string) error {
	for _, source := range allSources {
		if val == string(source) {
			*s = sourceFlag(source)
			return nil
		}
	}
	return fmt.Errorf("invalid source: %s", val)
}

func (s sourceFlag) String() string {
	return string(s)
}

func (s *sourceFlag) Type() string {
	return "Source"
}

var (
	_          pflag.Value = (*sourceFlag)(nil)
	allSources             = []config.SourceType{
		config.SourceEmbedded,
		config.SourceFile,
		config.SourceRemote,
		config.SourceDatabase,
	}
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if strategy != "" {
		cfg.Engine.Strategy = strategy.String()
	}
	if source != "" {
		cfg.Dictionary.Source = config.SourceType(source)
	}
	return cfg, nil
}

// newSource returns the dictionary source configured by cfg and a function
// releasing its resources.
func newSource(cfg config.DictionaryConfig, dbConfig config.DatabaseConfig) (dictionary.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.SourceFile:
		if cfg.Path == "" {
			return nil, nil, fmt.Errorf("dictionary.path is required for the %s source", cfg.Source)
		}
		return dictionary.FileSource{Path: cfg.Path}, noop, nil
	case config.SourceRemote:
		if cfg.URL == "" {
			return nil, nil, fmt.Errorf("dictionary.url is required for the %s source", cfg.Source)
		}
		remote := dictionary.NewRemoteSource(cfg.URL, cfg.CacheDirectory, cfg.RetryAttempts)
		return remote, remote.Close, nil
	case config.SourceDatabase:
		db, err := database.Open(dbConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		return dictionary.DBSource{Repository: dictionary.NewDBPhraseRepository(db)}, db.Close, nil
	case config.SourceEmbedded, "":
		return dictionary.EmbeddedSource{}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown dictionary source: %s", cfg.Source)
	}
}

func engineOptions(cfg *config.Config, source dictionary.Source) engine.Options {
	return engine.Options{
		Strategy:              engine.Strategy(cfg.Engine.Strategy),
		MaxPhraseLength:       cfg.Engine.MaxPhraseLength,
		PinyinCacheCapacity:   cfg.Engine.PinyinCacheCapacity,
		InitialsCacheCapacity: cfg.Engine.InitialsCacheCapacity,
		MaxVariants:           cfg.Engine.MaxVariants,
		Source:                source,
	}
}

// newEngine loads the configuration and returns an initialized engine with a
// function tearing it down.
func newEngine(ctx context.Context) (*engine.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	source, closeSource, err := newSource(cfg.Dictionary, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	e, err := engine.New(engineOptions(cfg, source))
	if err != nil {
		_ = closeSource()
		return nil, nil, nil, fmt.Errorf("engine.New > %w", err)
	}
	if err := e.Initialize(ctx); err != nil {
		_ = closeSource()
		return nil, nil, nil, fmt.Errorf("engine.Initialize > %w", err)
	}

	return e, cfg, func() {
		e.Teardown()
		_ = closeSource()
	}, nil
}
