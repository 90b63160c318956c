//go:build !darwin

package window

// PlatformChrome returns the chrome strategy for platforms without an overlay title bar.
func PlatformChrome(_, _ string) Chrome {
	return DefaultChrome{}
}
