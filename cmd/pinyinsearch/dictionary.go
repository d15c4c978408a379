package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/pinyinsearch/internal/config"
	"github.com/at-ishikawa/pinyinsearch/internal/database"
	"github.com/at-ishikawa/pinyinsearch/internal/dictionary"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "dictionary",
		Short: "Phrase dictionary commands",
	}

	rootCommand.AddCommand(
		newDictionaryExportCommand(),
		newDictionaryImportCommand(),
	)
	return rootCommand
}

func newDictionaryExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the configured dictionary in the phrase file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, closeSource, err := newSource(cfg.Dictionary, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeSource()
			}()

			d, err := source.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("source.Load > %w", err)
			}
			if err := dictionary.Write(cmd.OutOrStdout(), d.Entries()); err != nil {
				return fmt.Errorf("dictionary.Write > %w", err)
			}
			return nil
		},
	}
}

func newDictionaryImportCommand() *cobra.Command {
	var from sourceFlag
	command := &cobra.Command{
		Use:   "import",
		Short: "Store a dictionary in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if from == "" {
				from = sourceFlag(config.SourceEmbedded)
			}
			if config.SourceType(from) == config.SourceDatabase {
				return fmt.Errorf("cannot import from the %s source", from)
			}

			dictionaryConfig := cfg.Dictionary
			dictionaryConfig.Source = config.SourceType(from)
			source, closeSource, err := newSource(dictionaryConfig, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeSource()
			}()

			ctx := cmd.Context()
			d, err := source.Load(ctx)
			if err != nil {
				return fmt.Errorf("source.Load > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}

			repository := dictionary.NewDBPhraseRepository(db)
			entries := d.Entries()
			for i := range entries {
				if err := repository.Upsert(ctx, &entries[i]); err != nil {
					return fmt.Errorf("repository.Upsert(%s) > %w", entries[i].Phrase, err)
				}
			}
			slog.Default().Info("imported phrases",
				slog.String("source", string(from)),
				slog.Int("count", len(entries)),
			)
			return nil
		},
	}
	command.Flags().Var(&from, "from", fmt.Sprintf("Source to import from. Possible values are %v", allSources[:3]))
	return command
}
