package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/campfire/webgate/internal/info"
)

type versionCommand struct{}

// NewVersionCommand returns the command that prints the webgate build version
// (set with ldflags, or "dev" on local builds).
func NewVersionCommand(app *kingpin.Application) Command {
	app.Command("version", "Prints the webgate version.")

	return versionCommand{}
}

func (versionCommand) Name() string { return "version" }

// Run writes the bare version without newline, ready to be consumed by scripts.
func (versionCommand) Run(_ context.Context, config RootConfig) error {
	_, err := fmt.Fprint(config.Stdout, info.Version)
	return err
}
