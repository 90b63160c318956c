//go:build desktop

package shell

import "github.com/wailsapp/wails/v2"

func run(app *App) error {
	if err := checkGUIDependencies(); err != nil {
		return err
	}

	return wails.Run(app)
}
