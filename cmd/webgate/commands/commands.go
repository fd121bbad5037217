package commands

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/campfire/webgate/internal/log"
)

// Logger output formats selected with `--logger`.
const (
	LoggerTypeDefault = "default"
	LoggerTypeJSON    = "json"
)

// Command is a webgate subcommand (server, version...). Commands register their
// flags on creation and are run by main once the command line is parsed.
type Command interface {
	Name() string
	Run(ctx context.Context, config RootConfig) error
}

// RootConfig holds the flags shared by all webgate subcommands and the
// dependencies main builds from them.
type RootConfig struct {
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootConfig registers the global flags, also settable as WEBGATE_* env vars.
func NewRootConfig(app *kingpin.Application) *RootConfig {
	c := &RootConfig{}

	app.Flag("debug", "Enable debug logs, every routed request is logged.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	return c
}
