// Package window provisions the application window.
//
// Provisioning resolves the configuration into a Request, applies the
// platform chrome strategy and hands the Request to a Creator. Every failure
// is a startup error; there is no retry and no fallback window.
package window

import (
	"net/url"

	"github.com/mpyw/pake/internal/inject"
)

// Label identifies the main window.
const Label = "pake"

// SourceKind tells how a ContentSource is loaded.
type SourceKind int

const (
	// SourceRemote is a network address.
	SourceRemote SourceKind = iota + 1
	// SourceBundled is a path into the bundled application resources.
	SourceBundled
)

// ContentSource is the resolved origin of the page.
type ContentSource struct {
	kind   SourceKind
	remote *url.URL
	path   string
}

// Remote returns a ContentSource for a network address.
func Remote(u *url.URL) ContentSource {
	return ContentSource{kind: SourceRemote, remote: u}
}

// Bundled returns a ContentSource for a path into bundled resources.
// The path is kept verbatim.
func Bundled(path string) ContentSource {
	return ContentSource{kind: SourceBundled, path: path}
}

// Kind returns the source kind.
func (s ContentSource) Kind() SourceKind { return s.kind }

// URL returns the remote address, or nil for bundled sources.
func (s ContentSource) URL() *url.URL { return s.remote }

// Path returns the bundled path, or "" for remote sources.
func (s ContentSource) Path() string { return s.path }

func (s ContentSource) String() string {
	switch s.kind {
	case SourceRemote:
		return s.remote.String()
	case SourceBundled:
		return "bundled:" + s.path
	default:
		return ""
	}
}

// TitleBarStyle selects the title bar decoration.
type TitleBarStyle int

const (
	// TitleBarDefault leaves the title bar to the platform.
	TitleBarDefault TitleBarStyle = iota
	// TitleBarVisible is a fully visible system title bar.
	TitleBarVisible
	// TitleBarOverlay hides the title bar and lets content extend under it.
	TitleBarOverlay
)

func (s TitleBarStyle) String() string {
	switch s {
	case TitleBarVisible:
		return "visible"
	case TitleBarOverlay:
		return "overlay"
	default:
		return "default"
	}
}

// Theme selects the window theme.
type Theme int

const (
	// ThemeDefault follows the platform theme.
	ThemeDefault Theme = iota
	// ThemeDark forces the dark theme.
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "default"
}

// Request is a fully specified window construction request.
type Request struct {
	Label  string
	Source ContentSource
	Title  string

	// Visible is the initial visibility. The window starts hidden and is
	// shown once the page is ready.
	Visible bool

	UserAgent   string
	Resizable   bool
	Fullscreen  bool
	AlwaysOnTop bool
	Width       float64
	Height      float64

	// DragDropHandler reports whether the shell intercepts file drops.
	// It is always false so drops reach the page.
	DragDropHandler bool

	// InitScripts run in order before any page script.
	InitScripts []inject.Script

	// Proxy is nil when no proxy is configured.
	Proxy *url.URL

	TitleBar      TitleBarStyle
	Theme         Theme
	DataDirectory string
}
