package contentserver

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mpyw/pake/internal/inject"
)

type bundled struct {
	files   fs.FS
	index   string
	scripts []inject.Script
	logger  *log.Logger
	static  http.Handler
}

func newBundled(opts Options) (*bundled, error) {
	if opts.Resources == nil {
		return nil, fmt.Errorf("%w: no resources for %s", ErrSource, opts.Request.Source)
	}

	name := strings.TrimPrefix(path.Clean(filepath.ToSlash(opts.Request.Source.Path())), "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %s", ErrSource, opts.Request.Source)
	}

	files := opts.Resources
	if dir := path.Dir(name); dir != "." {
		sub, err := fs.Sub(files, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSource, err)
		}
		files = sub
	}

	if _, err := fs.Stat(files, path.Base(name)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	return &bundled{
		files:   files,
		index:   path.Base(name),
		scripts: opts.Request.InitScripts,
		logger:  opts.Logger,
		static:  http.FileServerFS(files),
	}, nil
}

func (h *bundled) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	root := name == ""
	if root {
		name = h.index
	}

	ext := strings.ToLower(path.Ext(name))
	if ext != ".html" && ext != ".htm" {
		if root {
			// Never list the resources directory.
			http.ServeFileFS(w, r, h.files, h.index)
			return
		}
		h.static.ServeHTTP(w, r)
		return
	}

	doc, err := fs.ReadFile(h.files, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.Error("failed to read bundled document", "name", name, "err", err)
		http.Error(w, "unreadable document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(InjectHTML(doc, h.scripts))
}
