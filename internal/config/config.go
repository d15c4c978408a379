package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Engine     EngineConfig     `mapstructure:"engine"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
}

type EngineConfig struct {
	Strategy              string `mapstructure:"strategy" validate:"oneof=dictionary variant"`
	MaxPhraseLength       int    `mapstructure:"max_phrase_length" validate:"min=2,max=16"`
	PinyinCacheCapacity   int    `mapstructure:"pinyin_cache_capacity" validate:"min=1"`
	InitialsCacheCapacity int    `mapstructure:"initials_cache_capacity" validate:"min=1"`
	MaxVariants           int    `mapstructure:"max_variants" validate:"min=0"`
}

type SourceType string

const (
	SourceEmbedded SourceType = "embedded"
	SourceFile     SourceType = "file"
	SourceRemote   SourceType = "remote"
	SourceDatabase SourceType = "database"
)

type DictionaryConfig struct {
	Source         SourceType `mapstructure:"source" validate:"oneof=embedded file remote database"`
	Path           string     `mapstructure:"path" validate:"required_if=Source file,omitempty,file"`
	URL            string     `mapstructure:"url" validate:"required_if=Source remote,omitempty,url"`
	CacheDirectory string     `mapstructure:"cache_directory"`
	RetryAttempts  uint       `mapstructure:"retry_attempts" validate:"max=10"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pinyinsearch")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Viper exposes the underlying viper instance so that command line flags can
// be bound on top of the file configuration.
func (loader *ConfigLoader) Viper() *viper.Viper {
	return loader.viper
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("engine.strategy", "dictionary")
	v.SetDefault("engine.max_phrase_length", 4)
	v.SetDefault("engine.pinyin_cache_capacity", 4096)
	v.SetDefault("engine.initials_cache_capacity", 4096)
	v.SetDefault("engine.max_variants", 0)
	v.SetDefault("dictionary.source", string(SourceEmbedded))
	v.SetDefault("dictionary.cache_directory", "dictionaries")
	v.SetDefault("dictionary.retry_attempts", 3)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")
	v.SetDefault("catalog.path", "candidates.yml")

	if err := v.BindEnv("dictionary.url", "PINYINSEARCH_DICTIONARY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind PINYINSEARCH_DICTIONARY_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
