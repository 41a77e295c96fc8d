// Package config resolves command settings from flags, the environment
// and defaults, in that order.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xyproto/env/v2"
)

// Output formats accepted by --format and ABSURD_FORMAT.
const (
	FormatSexpr  = "sexpr"
	FormatPretty = "pretty"
)

// Flagger is the part of *cli.Context that Read needs.
type Flagger interface {
	String(name string) string
	Bool(name string) bool
	IsSet(name string) bool
}

// Config holds the resolved settings of one command invocation.
type Config struct {
	// Format is FormatSexpr or FormatPretty.
	Format string
	// IDs tags every printed expression with its node identity.
	IDs   bool
	Stats bool
	Watch bool

	LogLevel zerolog.Level
	// HistoryPath is where the interactive REPL keeps its history, with a
	// leading "~" already expanded.
	HistoryPath string
}

// Read resolves the configuration. A flag wins over its environment
// variable when it was set explicitly; unset or empty variables fall back
// to the defaults.
func Read(flags Flagger) (*Config, error) {
	// env caches the environment on first use; reload so later changes
	// are seen.
	env.Load()

	format := env.Str("ABSURD_FORMAT", FormatSexpr)
	if flags.IsSet("format") {
		format = flags.String("format")
	}
	switch format {
	case FormatSexpr, FormatPretty:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	levelName := env.Str("ABSURD_LOG_LEVEL", "warn")
	if flags.IsSet("log-level") {
		levelName = flags.String("log-level")
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := Config{
		Format:      format,
		IDs:         flags.Bool("ids"),
		Stats:       flags.Bool("stats"),
		Watch:       flags.Bool("watch"),
		LogLevel:    level,
		HistoryPath: env.File("ABSURD_HISTORY", "~/.absurd_history"),
	}

	return &cfg, nil
}
