// Package config defines the pake.json configuration read by the window provisioner.
//
// The configuration is loaded once at startup and treated as read-only afterwards.
// Only the first entry of Windows is consulted; see window.Provisioner.
package config

import (
	"encoding/json"
	"runtime"

	"gopkg.in/yaml.v3"
)

// URL types accepted in WindowConfig.URLType.
const (
	URLTypeWeb   = "web"
	URLTypeLocal = "local"
)

// PakeConfig is the top-level application configuration.
type PakeConfig struct {
	Windows        []WindowConfig `json:"windows"          yaml:"windows"`
	UserAgent      UserAgent      `json:"user_agent"       yaml:"user_agent"`
	SystemTray     SystemTray     `json:"system_tray"      yaml:"system_tray"`
	SystemTrayPath string         `json:"system_tray_path" yaml:"system_tray_path"`
	Inject         []string       `json:"inject,omitempty" yaml:"inject"`
	ProxyURL       string         `json:"proxy_url"        yaml:"proxy_url"`
}

// WindowConfig holds the settings of a single window.
//
// The whole struct is serialized into the page as window.pakeConfig,
// so field names follow the snake_case keys of pake.json.
type WindowConfig struct {
	URL                  string  `json:"url"                    yaml:"url"`
	URLType              string  `json:"url_type"               yaml:"url_type"`
	HideTitleBar         bool    `json:"hide_title_bar"         yaml:"hide_title_bar"`
	Fullscreen           bool    `json:"fullscreen"             yaml:"fullscreen"`
	Width                float64 `json:"width"                  yaml:"width"`
	Height               float64 `json:"height"                 yaml:"height"`
	Resizable            bool    `json:"resizable"              yaml:"resizable"`
	AlwaysOnTop          bool    `json:"always_on_top"          yaml:"always_on_top"`
	DarkMode             bool    `json:"dark_mode"              yaml:"dark_mode"`
	ActivationShortcut   string  `json:"activation_shortcut"    yaml:"activation_shortcut"`
	DisabledWebShortcuts bool    `json:"disabled_web_shortcuts" yaml:"disabled_web_shortcuts"`
}

// UserAgent holds per-platform User-Agent overrides.
//
// In pake.json it is either an object keyed by platform or a plain string
// applied to every platform.
type UserAgent struct {
	MacOS   string `json:"macos"   yaml:"macos"`
	Linux   string `json:"linux"   yaml:"linux"`
	Windows string `json:"windows" yaml:"windows"`
}

type userAgentFields UserAgent

func sameUserAgent(s string) UserAgent {
	return UserAgent{MacOS: s, Linux: s, Windows: s}
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UserAgent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = sameUserAgent(s)
		return nil
	}
	var f userAgentFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*u = UserAgent(f)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *UserAgent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*u = sameUserAgent(s)
		return nil
	}
	var f userAgentFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*u = UserAgent(f)
	return nil
}

// Get returns the User-Agent for the platform this binary was built for.
func (u UserAgent) Get() string {
	return u.For(runtime.GOOS)
}

// For returns the User-Agent for the given GOOS value.
// Platforms other than darwin and windows use the Linux entry.
func (u UserAgent) For(goos string) string {
	switch goos {
	case "darwin":
		return u.MacOS
	case "windows":
		return u.Windows
	default:
		return u.Linux
	}
}

// SystemTray holds per-platform system tray switches.
type SystemTray struct {
	MacOS   bool `json:"macos"   yaml:"macos"`
	Linux   bool `json:"linux"   yaml:"linux"`
	Windows bool `json:"windows" yaml:"windows"`
}

// FirstWindow returns the first window entry and whether one exists.
func (c *PakeConfig) FirstWindow() (WindowConfig, bool) {
	if c == nil || len(c.Windows) == 0 {
		return WindowConfig{}, false
	}
	return c.Windows[0], true
}
