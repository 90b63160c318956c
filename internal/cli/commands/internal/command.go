// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/pake/internal/cli/output"
)

// CommandNotFound is the shared handler for unknown commands.
// It shows the help of cmd, then names the command that was not found.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	if cmd.Root() == cmd {
		_ = cli.ShowAppHelp(cmd)
	} else {
		_ = cli.ShowSubcommandHelp(cmd)
	}
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Println(w, "")
	output.Error(w, "unknown command %q", command)
	output.Hint(w, "run %q to list the available commands", cmd.FullName()+" --help")
}
