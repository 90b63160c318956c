//go:build desktop && !linux

package shell

// checkGUIDependencies is a no-op on non-Linux platforms.
// macOS ships WebKit and Windows installs the WebView2 runtime on demand.
func checkGUIDependencies() error {
	return nil
}
