// Package open provides the command that opens the application window.
package open

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/pake/internal/cli/commands/internal"
	"github.com/mpyw/pake/internal/shell"
)

// Command returns the open command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "open",
		Usage: "Open the application window (default command)",
		Description: `Provision the window described by the configuration and run it until it is closed.

Only the first entry of "windows" is used. Cookies of remote pages are kept in
the application data directory and survive restarts.

EXAMPLES:
  pake open                                  Open the window of ./pake.json
  pake --config app.yaml open                Use another configuration
  PAKE_PROXY_URL=http://127.0.0.1:7890 pake  Open through a proxy`,
		CommandNotFound: internal.CommandNotFound,
		Action: Action,
	}
}

// Action opens the window. It is also the default action of the application.
func Action(_ context.Context, cmd *cli.Command) error {
	env, err := internal.LoadEnv(cmd)
	if err != nil {
		return err
	}

	return Run(env)
}

// Run provisions the window of env and blocks until it is closed.
// The data directory is only touched once provisioning succeeded.
func Run(env *internal.Env) error {
	h, err := env.Provisioner(shell.Creator{
		Resources: env.Resources,
		DataDir:   env.DataDir,
		Logger:    env.Logger,
	}).Provision(env.Config)
	if err != nil {
		return err
	}

	return h.Run()
}
