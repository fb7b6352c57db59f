package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var run string
	var list bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run a configured grouping of commands against one file",
		Long: "Batch re-invokes writerator once per argument line of a named grouping " +
			"from the config file, echoing each command before its captured output. " +
			"Arguments containing spaces can be quoted: count -c \"New York\" -t s.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			switch {
			case list:
				return writeOutput(cmd, args[0], cfg.BatchNames())
			case run != "":
				argLines, err := cfg.Batch(run)
				if err != nil {
					return err
				}
				lines, err := runBatch(cmd, args[0], run, argLines)
				if err != nil {
					return err
				}
				return writeOutput(cmd, args[0], lines)
			default:
				return fmt.Errorf("batch: specify --run BATCH_NAME or --list")
			}
		},
	}

	cmd.Flags().StringVarP(&run, "run", "r", "", "Run the specified batch grouping")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List all available batch groupings")

	return cmd
}

// runBatch executes each argument line of a grouping as a subprocess of
// this binary against the same input file, capturing stdout and stderr
// explicitly. Any failing subprocess aborts the batch with its stderr
// attached.
func runBatch(cmd *cobra.Command, file, name string, argLines []string) ([]string, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("batch %q: locate executable: %w", name, err)
	}

	var out []string
	for _, argLine := range argLines {
		fields, err := splitArgLine(argLine)
		if err != nil {
			return nil, fmt.Errorf("batch %q: %w", name, err)
		}
		if len(fields) == 0 {
			continue
		}
		// A grouping that re-enters batch mode would recurse without bound.
		if fields[0] == "batch" {
			return nil, fmt.Errorf("batch %q: nested batch command %q is not allowed", name, argLine)
		}

		subArgs := subcommandArgs(file, fields)
		out = append(out, "writerator "+file+" "+argLine)

		sub := exec.CommandContext(cmd.Context(), exe, subArgs...)
		var stdout, stderr bytes.Buffer
		sub.Stdout = &stdout
		sub.Stderr = &stderr
		if err := sub.Run(); err != nil {
			return nil, fmt.Errorf("batch %q: command %q failed: %w (stderr: %s)",
				name, argLine, err, strings.TrimSpace(stderr.String()))
		}

		scanner := bufio.NewScanner(&stdout)
		for scanner.Scan() {
			out = append(out, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("batch %q: read command %q output: %w", name, argLine, err)
		}
		out = append(out, "")
	}

	return out, nil
}

// subcommandArgs builds the argv for one grouping line. The parent's
// --config and resolved --log-level are carried over so children load the
// same configuration the grouping was resolved from.
func subcommandArgs(file string, fields []string) []string {
	args := append([]string{fields[0], file}, fields[1:]...)
	if cfgFile != "" {
		args = append(args, "--config", cfgFile)
	}
	if activeCfg.LogLevel != "" {
		args = append(args, "--log-level", activeCfg.LogLevel)
	}
	return args
}

// splitArgLine splits a grouping line into arguments. Double- or
// single-quoted segments keep their spaces; quotes do not nest. An
// unterminated quote is an error rather than a silently truncated
// argument.
func splitArgLine(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %q quote in argument line %q", quote, line)
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
