//go:build darwin

package shell

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"github.com/mpyw/pake/internal/window"
)

func applyPlatformOptions(opts *options.App, req *window.Request, _ string) {
	m := &mac.Options{
		TitleBar:   mac.TitleBarDefault(),
		Appearance: mac.DefaultAppearance,
	}

	if req.TitleBar == window.TitleBarOverlay {
		m.TitleBar = mac.TitleBarHidden()
	}
	if req.Theme == window.ThemeDark {
		m.Appearance = mac.NSAppearanceNameDarkAqua
	}

	opts.Mac = m
}
