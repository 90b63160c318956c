package shell

import (
	"context"
	"math"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/mpyw/pake/internal/logging"
	"github.com/mpyw/pake/internal/window"
)

// App is the runtime configuration of one window.
type App = options.App

// NewApp maps req onto the runtime options. All pages are served by handler.
// dataDir roots the webview's own storage where the platform allows it.
func NewApp(req *window.Request, handler http.Handler, dataDir string, logger *log.Logger) *App {
	wl := logging.ForWails(logger)

	app := &options.App{
		Title:         req.Title,
		Width:         int(math.Round(req.Width)),
		Height:        int(math.Round(req.Height)),
		DisableResize: !req.Resizable,
		Fullscreen:    req.Fullscreen,
		AlwaysOnTop:   req.AlwaysOnTop,
		StartHidden:   !req.Visible,
		AssetServer: &assetserver.Options{
			Handler: handler,
		},
		DragAndDrop: &options.DragAndDrop{
			EnableFileDrop: req.DragDropHandler,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		Logger:           wl,
		LogLevel:         wl.Level(),
	}

	if !req.Visible {
		// Hidden until the first document is ready to avoid a blank frame.
		app.OnDomReady = func(ctx context.Context) {
			wailsruntime.WindowShow(ctx)
		}
	}

	applyPlatformOptions(app, req, dataDir)

	return app
}
