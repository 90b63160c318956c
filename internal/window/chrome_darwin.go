//go:build darwin

package window

// PlatformChrome returns the chrome strategy for macOS.
func PlatformChrome(displayName, dataDir string) Chrome {
	return OverlayChrome{DisplayName: displayName, DataDirectory: dataDir}
}
