//go:build windows

package shell

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/mpyw/pake/internal/window"
)

func applyPlatformOptions(opts *options.App, req *window.Request, dataDir string) {
	opts.Windows = &windows.Options{
		WebviewIsTransparent: false,
		WindowIsTranslucent:  false,
		WebviewUserDataPath:  dataDir,
		Theme:                windows.SystemDefault,
	}

	if req.Theme == window.ThemeDark {
		opts.Windows.Theme = windows.Dark
	}
}
