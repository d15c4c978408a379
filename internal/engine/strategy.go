package engine

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Strategy selects how heteronyms are disambiguated.
type Strategy string

const (
	// StrategyDictionary resolves heteronyms through the phrase dictionary
	// with greedy segmentation as the fallback.
	StrategyDictionary Strategy = "dictionary"
	// StrategyVariant enumerates every combination of heteronym readings.
	StrategyVariant Strategy = "variant"
)

var (
	_             pflag.Value = (*Strategy)(nil)
	allStrategies             = []Strategy{StrategyDictionary, StrategyVariant}
)

func (s *Strategy) Set(val string) error {
	for _, strategy := range allStrategies {
		if val == string(strategy) {
			*s = strategy
			return nil
		}
	}
	return fmt.Errorf("invalid strategy: %s", val)
}

func (s Strategy) String() string {
	return string(s)
}

func (s *Strategy) Type() string {
	return "Strategy"
}

func (s Strategy) valid() bool {
	for _, strategy := range allStrategies {
		if s == strategy {
			return true
		}
	}
	return false
}
