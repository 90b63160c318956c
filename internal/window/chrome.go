package window

import "github.com/mpyw/pake/internal/config"

// Chrome applies platform-specific window decoration to a Request.
// The implementation is picked at compile time by PlatformChrome.
type Chrome interface {
	Apply(req *Request, w config.WindowConfig)
}

// DefaultChrome leaves the Request untouched.
// The window title stays empty on these platforms.
type DefaultChrome struct{}

// Apply implements Chrome.
func (DefaultChrome) Apply(*Request, config.WindowConfig) {}

// OverlayChrome is used where the window system supports an overlay title bar.
// It also isolates storage per application and titles the window.
type OverlayChrome struct {
	DisplayName   string
	DataDirectory string
}

// Apply implements Chrome.
func (c OverlayChrome) Apply(req *Request, w config.WindowConfig) {
	if w.HideTitleBar {
		req.TitleBar = TitleBarOverlay
	} else {
		req.TitleBar = TitleBarVisible
	}

	if w.DarkMode {
		req.Theme = ThemeDark
	}

	req.DataDirectory = c.DataDirectory
	req.Title = c.DisplayName
}
