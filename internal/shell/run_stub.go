//go:build !desktop

package shell

import "errors"

// ErrUnavailable is returned by Window.Run when the binary was built without
// the webview runtime.
var ErrUnavailable = errors.New("webview is not available in this build. Rebuild with '-tags desktop,production'")

func run(_ *App) error {
	return ErrUnavailable
}
