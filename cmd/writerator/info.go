package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var general bool
	var test string

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "General statistics and readability tests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			text, err := loadText(args[0])
			if err != nil {
				return err
			}

			switch {
			case test != "":
				if test != "g" {
					return fmt.Errorf("info: unknown readability test %q (g for Gunning-Fog)", test)
				}
				score, err := text.GunningFog()
				if err != nil {
					return err
				}
				return writeOutput(cmd, args[0], []string{fmt.Sprintf("%.2f", score)})
			case general:
				stats := text.Stats()
				lines := []string{
					fmt.Sprintf("characters: %d", stats.Characters),
					fmt.Sprintf("words: %d", stats.Words),
					fmt.Sprintf("distinct words: %d", stats.DistinctWords),
					fmt.Sprintf("sentences: %d", stats.Sentences),
					fmt.Sprintf("average word length: %.2f", stats.AverageWordLength),
					fmt.Sprintf("words per sentence: %.2f", stats.WordsPerSentence),
				}
				return writeOutput(cmd, args[0], lines)
			default:
				return fmt.Errorf("info: specify --general or --test g")
			}
		},
	}

	cmd.Flags().BoolVarP(&general, "general", "g", false, "Print a general info summary of the text")
	cmd.Flags().StringVarP(&test, "test", "t", "", "Run a readability test (g for Gunning-Fog index)")

	return cmd
}
