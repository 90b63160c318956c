// Package appdir resolves the per-application data directory.
//
// Each packaged application gets its own directory under the user config
// home, so cookies and storage are isolated per application identity.
package appdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ErrInvalidName is returned when the product name cannot be used as a directory name.
var ErrInvalidName = errors.New("invalid product name")

// Locate returns the data directory for productName under the user config home.
// The directory is not created; see Ensure.
func Locate(productName string) (string, error) {
	return LocateIn(xdg.ConfigHome, productName)
}

// LocateIn is like Locate but uses base instead of the user config home.
func LocateIn(base, productName string) (string, error) {
	name := strings.TrimSpace(productName)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, productName)
	}

	return filepath.Join(base, name), nil
}

// Ensure creates dir when missing. Only the owner may read it.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return nil
}
