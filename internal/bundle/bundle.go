// Package bundle reads metadata of the packaged application.
package bundle

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"howett.net/plist"
)

// Info is the subset of Info.plist used by pake.
type Info struct {
	DisplayName string `plist:"CFBundleDisplayName"`
	Name        string `plist:"CFBundleName"`
	Identifier  string `plist:"CFBundleIdentifier"`
	Version     string `plist:"CFBundleShortVersionString"`
}

// DisplayName returns the display name of the running application.
// Outside of a macOS .app bundle it returns fallback.
func DisplayName(fallback string) string {
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	return DisplayNameFor(exe, fallback)
}

// DisplayNameFor returns the display name of the bundle containing executable.
func DisplayNameFor(executable, fallback string) string {
	info, ok := ReadInfo(executable)
	if !ok {
		return fallback
	}
	return lo.CoalesceOrEmpty(strings.TrimSpace(info.DisplayName), strings.TrimSpace(info.Name), fallback)
}

// ReadInfo reads Contents/Info.plist of the .app bundle containing executable.
// Both XML and binary plists are accepted.
func ReadInfo(executable string) (Info, bool) {
	macOSDir := filepath.Dir(executable)
	contents := filepath.Dir(macOSDir)
	if filepath.Base(macOSDir) != "MacOS" || filepath.Base(contents) != "Contents" {
		return Info{}, false
	}

	raw, err := os.ReadFile(filepath.Join(contents, "Info.plist"))
	if err != nil || len(raw) == 0 {
		return Info{}, false
	}

	var info Info
	if _, err := plist.Unmarshal(raw, &info); err != nil {
		return Info{}, false
	}

	return info, true
}
