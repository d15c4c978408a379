package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/pinyinsearch/internal/engine"
)

func newTransliterateCommand(use string, short string, transliterate func(e *engine.Engine, text string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <text>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, teardown, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer teardown()

			for _, text := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), transliterate(e, text)); err != nil {
					return fmt.Errorf("fmt.Fprintln > %w", err)
				}
			}
			return nil
		},
	}
}

func newPinyinCommand() *cobra.Command {
	return newTransliterateCommand("pinyin", "Print the pinyin of each text", (*engine.Engine).Pinyin)
}

func newInitialsCommand() *cobra.Command {
	return newTransliterateCommand("initials", "Print the pinyin initials of each text", (*engine.Engine).Initials)
}

func newVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants <text>",
		Short: "Print every reading generated for the heteronyms of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, teardown, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer teardown()

			text := args[0]
			if !e.HasVariants(text) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), e.Pinyin(text))
				return err
			}
			for _, v := range e.Variants(text) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Spaced(), v.Initials()); err != nil {
					return fmt.Errorf("fmt.Fprintf > %w", err)
				}
			}
			return nil
		},
	}
}

func newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match <name> <query>",
		Short: "Print whether a query matches a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, teardown, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer teardown()

			name, query := args[0], args[1]
			matched := e.Matches(name, query)
			output := color.New(color.FgRed)
			if matched {
				output = color.New(color.FgGreen)
			}
			if _, err := output.Fprintf(cmd.OutOrStdout(), "%t\n", matched); err != nil {
				return fmt.Errorf("output.Fprintf > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "pinyin: %s, initials: %s\n",
				e.Pinyin(name),
				e.Initials(name),
			)
			return err
		},
	}
}
