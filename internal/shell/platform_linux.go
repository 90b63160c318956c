//go:build linux

package shell

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"github.com/mpyw/pake/internal/window"
)

func applyPlatformOptions(opts *options.App, req *window.Request, _ string) {
	opts.Linux = &linux.Options{
		ProgramName:      req.Label,
		WebviewGpuPolicy: linux.WebviewGpuPolicyOnDemand,
	}
}
