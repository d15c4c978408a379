package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/pinyinsearch/internal/catalog"
)

func newSearchCommand() *cobra.Command {
	var catalogPath string
	command := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the catalog candidates matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cfg, teardown, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer teardown()

			if catalogPath == "" {
				catalogPath = cfg.Catalog.Path
			}
			c, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("catalog.Load > %w", err)
			}

			names := c.Names()
			e.Warmup(names)
			highlight := color.New(color.FgCyan, color.Bold)
			for _, name := range e.Filter(names, args[0]) {
				candidate, _ := c.Find(name)
				if _, err := highlight.Fprint(cmd.OutOrStdout(), name); err != nil {
					return fmt.Errorf("highlight.Fprint > %w", err)
				}
				line := fmt.Sprintf("\t%s\t%s", e.Pinyin(name), e.Initials(name))
				if candidate.Description != "" {
					line += "\t" + candidate.Description
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return fmt.Errorf("fmt.Fprintln > %w", err)
				}
			}
			return nil
		},
	}
	command.Flags().StringVar(&catalogPath, "catalog", "", "candidate catalog path overriding the configuration")
	return command
}

func newWarmupCommand() *cobra.Command {
	var catalogPath string
	command := &cobra.Command{
		Use:   "warmup",
		Short: "Fill the caches from the catalog and print engine statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cfg, teardown, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer teardown()

			if catalogPath == "" {
				catalogPath = cfg.Catalog.Path
			}
			c, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("catalog.Load > %w", err)
			}
			e.Warmup(c.Names())

			stats := e.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"strategy: %s\nphrases: %d\npinyin cached: %d\ninitials cached: %d\n",
				stats.Strategy,
				stats.DictionaryPhrases,
				stats.PinyinCached,
				stats.InitialsCached,
			)
			return err
		},
	}
	command.Flags().StringVar(&catalogPath, "catalog", "", "candidate catalog path overriding the configuration")
	return command
}
