// Package config loads writerator configuration by merging defaults, an
// optional config file, environment variables, and bound command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string              `mapstructure:"log_level"`
	Parser   ParserConfig        `mapstructure:"parser"`
	Presets  map[string][]int    `mapstructure:"presets"`
	Batches  map[string][]string `mapstructure:"batches"`
}

// ParserConfig carries the fallback values for flags the user leaves unset.
type ParserConfig struct {
	ElementType  string `mapstructure:"element_type"`
	NumberToShow int    `mapstructure:"number_to_show"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "error",
		Parser: ParserConfig{
			ElementType:  "w",
			NumberToShow: 10,
		},
		Presets: map[string][]int{
			"h": {7, 5, 7},
			"s": RepeatPattern(10, 14),
		},
		Batches: map[string][]string{},
	}
}

// RepeatPattern builds a syllable pattern of the given per-line count
// repeated over the given number of lines.
func RepeatPattern(syllables, lines int) []int {
	pattern := make([]int, lines)
	for i := range pattern {
		pattern[i] = syllables
	}
	return pattern
}

// Preset resolves a named syllable pattern. A copy is returned so callers
// cannot mutate the configured pattern.
func (c Config) Preset(name string) ([]int, error) {
	pattern, ok := c.Presets[name]
	if !ok || len(pattern) == 0 {
		return nil, fmt.Errorf("unknown syllable preset %q (configured: %s)", name, strings.Join(c.PresetNames(), ", "))
	}
	out := make([]int, len(pattern))
	copy(out, pattern)
	return out, nil
}

// PresetNames lists the configured preset names, sorted.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Batch resolves a named batch grouping to its argument lines.
func (c Config) Batch(name string) ([]string, error) {
	args, ok := c.Batches[name]
	if !ok {
		return nil, fmt.Errorf("no such batch grouping %q (configured: %s)", name, strings.Join(c.BatchNames(), ", "))
	}
	out := make([]string, len(args))
	copy(out, args)
	return out, nil
}

// BatchNames lists the configured batch grouping names, sorted.
func (c Config) BatchNames() []string {
	names := make([]string, 0, len(c.Batches))
	for name := range c.Batches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("parser-element-type", defaults.Parser.ElementType, "Default element type for analysis commands (w|c|s)")
	fs.Int("parser-number-to-show", defaults.Parser.NumberToShow, "Default number of results to show")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("WRITERATOR")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("writerator")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("parser.element_type", c.Parser.ElementType)
	v.SetDefault("parser.number_to_show", c.Parser.NumberToShow)
	v.SetDefault("presets", c.Presets)
	v.SetDefault("batches", c.Batches)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("parser.element_type", "parser-element-type")
	v.RegisterAlias("parser.number_to_show", "parser-number-to-show")
}
