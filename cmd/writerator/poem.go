package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/writerator/internal/config"
	"github.com/example/writerator/internal/texttools"
	"github.com/spf13/cobra"
)

func newPoemCmd() *cobra.Command {
	var syllables []int
	var preset string
	var shortcut []int
	var show int
	var seed int64

	cmd := &cobra.Command{
		Use:   "poem FILE",
		Short: "Generate randomized poems from the text",
		Long: "Poem assembles lines from the text's vocabulary so that each line's " +
			"estimated syllable count matches a pattern, given explicitly " +
			"(--syllables), by preset name (--preset), or as a per-line count and " +
			"line total (--shortcut).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pattern, err := resolveSyllablePattern(cfg, syllables, preset, shortcut)
			if err != nil {
				return err
			}

			text, err := loadText(args[0])
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(resolveSeed(cmd, seed)))
			gen := texttools.NewGenerator(text, rng)

			poems, err := gen.GeneratePoems(pattern, resolveShow(cmd, show))
			if err != nil {
				return err
			}
			return writeOutput(cmd, args[0], formatPoems(poems))
		},
	}

	cmd.Flags().IntSliceVarP(&syllables, "syllables", "l", nil, "Syllable count for each line of the poem")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Named syllable pattern from config (h for haiku, s for sonnet)")
	cmd.Flags().IntSliceVarP(&shortcut, "shortcut", "c", nil, "Syllables per line and number of lines (two values)")
	cmd.Flags().IntVarP(&show, "show", "s", 0, "Number of poems to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible poems (default: time-based)")
	cmd.MarkFlagsMutuallyExclusive("syllables", "preset", "shortcut")

	return cmd
}

// resolveSyllablePattern turns whichever pattern flag was given into a
// plain per-line syllable sequence; presets resolve through config before
// the engine is involved.
func resolveSyllablePattern(cfg config.Config, syllables []int, preset string, shortcut []int) ([]int, error) {
	switch {
	case len(syllables) > 0:
		return syllables, nil
	case preset != "":
		return cfg.Preset(preset)
	case len(shortcut) > 0:
		if len(shortcut) != 2 {
			return nil, fmt.Errorf("poem: --shortcut takes exactly two values (syllables per line, number of lines)")
		}
		return config.RepeatPattern(shortcut[0], shortcut[1]), nil
	}
	return nil, fmt.Errorf("poem: specify --syllables, --preset, or --shortcut")
}

func resolveSeed(cmd *cobra.Command, flagValue int64) int64 {
	if cmd.Flags().Changed("seed") {
		return flagValue
	}
	return time.Now().UnixNano()
}

// formatPoems renders each poem's lines followed by a blank separator line.
func formatPoems(poems []texttools.Poem) []string {
	var lines []string
	for _, poem := range poems {
		lines = append(lines, poem...)
		lines = append(lines, "")
	}
	return lines
}
