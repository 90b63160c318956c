// Package commands provides the command-line interface for pake.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/mpyw/pake/internal/cli/commands/inspect"
	"github.com/mpyw/pake/internal/cli/commands/internal"
	"github.com/mpyw/pake/internal/cli/commands/open"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "pake",
		Usage:   "Turn a web page into a desktop application window",
		Version: "0.1.0",
		Flags:   internal.Flags(),
		Action:  open.Action,
		Commands: []*cli.Command{
			open.Command(),
			inspect.Command(),
		},
		CommandNotFound: internal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
