//go:build !darwin && !windows && !linux

package shell

import (
	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/mpyw/pake/internal/window"
)

func applyPlatformOptions(*options.App, *window.Request, string) {}
