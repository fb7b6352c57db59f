package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// matchSeparator joins multiple patterns in a single positional argument,
// mirroring the PATTERN1~PATTERN2 form of the analysis config files.
const matchSeparator = "~"

func newMatchCmd() *cobra.Command {
	var typeCode string
	var show int

	cmd := &cobra.Command{
		Use:   "match FILE PATTERN1~PATTERN2~...",
		Short: "Rank elements by pattern matches within them",
		Long: "Match counts, for every element of the text, how many times the given " +
			"patterns occur as substrings within it, and ranks elements by their " +
			"total match count.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			et, err := resolveElementType(cmd, typeCode)
			if err != nil {
				return err
			}

			text, err := loadText(args[0])
			if err != nil {
				return err
			}

			patterns := strings.Split(args[1], matchSeparator)
			ranked, err := text.RankByMatchCount(patterns, et)
			if err != nil {
				return err
			}
			return writeOutput(cmd, args[0], formatRankedList(ranked, resolveShow(cmd, show)))
		},
	}

	cmd.Flags().StringVarP(&typeCode, "type", "t", "w", "Element type to analyze (w|c|s)")
	cmd.Flags().IntVarP(&show, "show", "s", 0, "Number of results to show")

	return cmd
}
