// Package shell realizes window construction requests with the Wails webview
// runtime.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/mpyw/pake/internal/appdir"
	"github.com/mpyw/pake/internal/contentserver"
	"github.com/mpyw/pake/internal/cookiestore"
	"github.com/mpyw/pake/internal/logging"
	"github.com/mpyw/pake/internal/window"
)

// ErrInvalidSize is returned for negative window dimensions.
var ErrInvalidSize = errors.New("invalid window size")

// Creator creates webview windows. It implements window.Creator.
type Creator struct {
	// Resources holds bundled files for local content sources.
	Resources fs.FS
	// DataDir holds persistent state when the request attaches no data directory.
	// Empty keeps remote cookies in memory.
	DataDir string
	Logger  *log.Logger
}

var _ window.Creator = Creator{}

// Create validates req and prepares the window. Nothing is shown until Run.
//
// Remote pages keep their cookies in a database under the request's data
// directory, falling back to DataDir.
func (c Creator) Create(req *window.Request) (window.Handle, error) {
	if req.Width < 0 || req.Height < 0 || math.IsNaN(req.Width) || math.IsNaN(req.Height) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, req.Width, req.Height)
	}

	logger := lo.Ternary(c.Logger != nil, c.Logger, logging.Discard())
	dataDir := lo.CoalesceOrEmpty(req.DataDirectory, c.DataDir)

	var (
		store *cookiestore.Store
		jar   http.CookieJar
	)
	if req.Source.Kind() == window.SourceRemote && dataDir != "" {
		var err error
		if store, err = openStore(dataDir, logger); err != nil {
			return nil, err
		}
		jar = store
	}

	handler, err := contentserver.New(contentserver.Options{
		Request:   req,
		Resources: c.Resources,
		Jar:       jar,
		Logger:    logger,
	})
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, err
	}

	return &Window{
		App:     NewApp(req, handler, dataDir, logger),
		Label:   req.Label,
		DataDir: dataDir,
		store:   store,
		logger:  logger,
	}, nil
}

func openStore(dir string, logger *log.Logger) (*cookiestore.Store, error) {
	if err := appdir.Ensure(dir); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, cookiestore.FileName)
	logger.Debug("opening cookie store", "path", path)
	return cookiestore.Open(context.Background(), path, cookiestore.WithLogger(logger))
}

// Window is a prepared webview window.
type Window struct {
	App   *App
	Label string
	// DataDir roots the persistent state of the window. Empty when nothing persists.
	DataDir string

	store  *cookiestore.Store
	logger *log.Logger
}

// Run shows the window and blocks until it is closed.
// The window's storage is released on return.
func (w *Window) Run() error {
	defer func() { _ = w.Close() }()

	w.logger.Debug("opening window", "label", w.Label, "size", fmt.Sprintf("%dx%d", w.App.Width, w.App.Height))
	return run(w.App)
}

// Close releases the window's storage. It is safe to call more than once.
func (w *Window) Close() error {
	if w.store == nil {
		return nil
	}
	err := w.store.Close()
	w.store = nil
	return err
}
