package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/writerator/internal/texttools"
	"github.com/spf13/cobra"
)

// loadText reads the input file and builds the engine's immutable Text.
// All file I/O stays in the CLI layer; the engine only ever sees content.
func loadText(path string) (*texttools.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	slog.Debug("loaded input text", "path", path, "bytes", len(data))
	return texttools.New(string(data)), nil
}

// outputFilename derives the --output destination: input.txt → input_out.txt.
func outputFilename(inPath string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + "_out" + ext
}

// writeOutput delivers the result lines either to stdout or, in --output
// mode, to a file derived from the input path.
func writeOutput(cmd *cobra.Command, inPath string, lines []string) error {
	if outputToFile {
		path := outputFilename(inPath)
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		slog.Debug("wrote output file", "path", path, "lines", len(lines))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// formatRankedList renders a ranking as "COUNT: VALUE" lines, truncated to
// the show count. Zero-count entries are suppressed.
func formatRankedList(ranked []texttools.RankedElement, show int) []string {
	if show > len(ranked) || show < 0 {
		show = len(ranked)
	}

	lines := make([]string, 0, show)
	for _, re := range ranked[:show] {
		if re.Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d: %s", re.Count, re.Value))
	}
	return lines
}

// resolveElementType applies the config fallback when the --type flag was
// left unset, then parses the code.
func resolveElementType(cmd *cobra.Command, flagValue string) (texttools.ElementType, error) {
	code := flagValue
	if !cmd.Flags().Changed("type") {
		code = activeCfg.Parser.ElementType
	}
	return texttools.ParseElementType(code)
}

// resolveShow applies the config fallback when the --show flag was left
// unset.
func resolveShow(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("show") {
		return flagValue
	}
	return activeCfg.Parser.NumberToShow
}
