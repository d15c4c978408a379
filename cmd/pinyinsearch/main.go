package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/pinyinsearch/internal/engine"
)

var (
	configFile string
	strategy   engine.Strategy
	source     sourceFlag
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	strategy = ""
	source = ""
	rootCommand := &cobra.Command{
		Use:           "pinyinsearch",
		Short:         "Match Chinese names by pinyin and initials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&strategy, "strategy", fmt.Sprintf("Heteronym strategy overriding the configuration. Possible values are %v", []engine.Strategy{engine.StrategyDictionary, engine.StrategyVariant}))
	flags.Var(&source, "source", fmt.Sprintf("Dictionary source overriding the configuration. Possible values are %v", allSources))

	rootCommand.AddCommand(
		newPinyinCommand(),
		newInitialsCommand(),
		newVariantsCommand(),
		newMatchCommand(),
		newSearchCommand(),
		newWarmupCommand(),
		newDictionaryCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
