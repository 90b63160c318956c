//go:build desktop && linux

package shell

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrMissingGUILibs is returned when required GUI libraries are not installed.
var ErrMissingGUILibs = errors.New(`webview dependencies not found

pake requires GTK3 and WebKit2GTK to be installed.
See: https://wails.io/docs/guides/linux-distro-support/`)

// checkGUIDependencies verifies that required GUI libraries are available.
// Uses ldconfig to query the dynamic linker cache for webkit2gtk.
// If ldconfig is unavailable, skips the check and lets the runtime handle it.
func checkGUIDependencies() error {
	if _, err := exec.LookPath("ldconfig"); err != nil {
		return nil
	}

	output, err := exec.Command("ldconfig", "-p").Output()
	if err != nil {
		return nil
	}

	if strings.Contains(string(output), "libwebkit2gtk") {
		return nil
	}

	return ErrMissingGUILibs
}
