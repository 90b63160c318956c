// Package contentserver serves the content of a provisioned window.
//
// The native shell loads every page from its own asset origin. A remote
// source is reverse proxied to its origin with the window's user agent, proxy
// and cookie jar applied; a bundled source is served from the resources
// directory. HTML documents in both modes get the window's init scripts
// inserted ahead of any page script.
package contentserver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/mpyw/pake/internal/window"
)

// ErrSource is returned when the content source cannot be served.
var ErrSource = errors.New("unservable content source")

// Options configures a content handler.
type Options struct {
	// Request is the window construction request to serve.
	Request *window.Request
	// Resources holds bundled files. Required for bundled sources.
	Resources fs.FS
	// Jar stores cookies of the remote origin. Optional.
	Jar http.CookieJar
	// Transport overrides the upstream round tripper. The request proxy is
	// only applied to the default transport.
	Transport http.RoundTripper
	Logger    *log.Logger
}

// New returns the handler serving req's content source.
func New(opts Options) (http.Handler, error) {
	if opts.Request == nil {
		return nil, fmt.Errorf("%w: no request", ErrSource)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	switch opts.Request.Source.Kind() {
	case window.SourceRemote:
		return newRemote(opts)
	case window.SourceBundled:
		return newBundled(opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrSource, opts.Request.Source)
	}
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/html"
}
