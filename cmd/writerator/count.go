package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var typeCode string
	var show int
	var totalCount bool
	var element string

	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Count occurrences of elements within the text",
		Args:  cobra.ExactArgs(1),
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

			switch {
			case element != "":
				n := text.CountOccurrences(element, et)
				return writeOutput(cmd, args[0], []string{strconv.Itoa(n)})
			case totalCount:
				ranked, err := text.RankByTotalCount(et)
				if err != nil {
					return err
				}
				return writeOutput(cmd, args[0], formatRankedList(ranked, resolveShow(cmd, show)))
			default:
				return fmt.Errorf("count: specify --totalcount or --count ELEMENT")
			}
		},
	}

	cmd.Flags().StringVarP(&typeCode, "type", "t", "w", "Element type to analyze (w|c|s)")
	cmd.Flags().IntVarP(&show, "show", "s", 0, "Number of results to show")
	cmd.Flags().BoolVar(&totalCount, "totalcount", false, "Count every element and rank by total count")
	cmd.Flags().StringVarP(&element, "count", "c", "", "Count how many times ELEMENT appears in the text")

	return cmd
}
