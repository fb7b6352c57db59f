package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/writerator/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	outputToFile bool
	activeCfg    config.Config
	cfgLoaded    bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "writerator",
		Short: "Text analysis and constrained poem generation",
		Long: "Writerator analyzes a text file (element frequency rankings, pattern " +
			"matching, readability scoring) and generates randomized poems whose " +
			"lines follow a syllable pattern resampled from the source text.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			cfgLoaded = true
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json|ini)")
	cmd.PersistentFlags().BoolVarP(&outputToFile, "output", "o", false, "Write output to FILE_out.EXT instead of stdout")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newCountCmd())
	cmd.AddCommand(newMatchCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newPoemCmd())
	cmd.AddCommand(newBatchCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := parseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelError
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", s)
}

func requireConfig() (config.Config, error) {
	if !cfgLoaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}
