package window

import (
	"fmt"
	"io"
	"net/url"

	"github.com/charmbracelet/log"

	"github.com/mpyw/pake/internal/config"
	"github.com/mpyw/pake/internal/inject"
)

// Handle is a created window. Run blocks on the host event loop until the
// application quits.
type Handle interface {
	Run() error
}

// Creator is the host windowing capability.
type Creator interface {
	Create(req *Request) (Handle, error)
}

// Provisioner turns a configuration into a window.
type Provisioner struct {
	Scripts inject.Bundle
	Chrome  Chrome
	Creator Creator
	Logger  *log.Logger
}

// Provision builds the Request for cfg and submits it to the Creator.
func (p *Provisioner) Provision(cfg *config.PakeConfig) (Handle, error) {
	req, err := p.Request(cfg)
	if err != nil {
		return nil, err
	}

	h, err := p.Creator.Create(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	p.logger().Debug("window created", "label", req.Label, "source", req.Source)
	return h, nil
}

// Request resolves cfg into a Request without creating a window.
func (p *Provisioner) Request(cfg *config.PakeConfig) (*Request, error) {
	w, ok := cfg.FirstWindow()
	if !ok {
		return nil, fmt.Errorf("%w: at least one window configuration is required", ErrConfiguration)
	}
	if n := len(cfg.Windows); n > 1 {
		p.logger().Debug("only the first window configuration is used", "ignored", n-1)
	}

	source, err := resolveSource(w)
	if err != nil {
		return nil, err
	}

	configScript, err := inject.ConfigScript(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	req := &Request{
		Label:           Label,
		Source:          source,
		Title:           "",
		Visible:         false,
		UserAgent:       cfg.UserAgent.Get(),
		Resizable:       w.Resizable,
		Fullscreen:      w.Fullscreen,
		AlwaysOnTop:     w.AlwaysOnTop,
		Width:           w.Width,
		Height:          w.Height,
		DragDropHandler: false,
		InitScripts:     p.Scripts.Sequence(configScript),
	}

	if cfg.ProxyURL != "" {
		proxy, err := parseAddress(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("proxy_url: %w", err)
		}
		req.Proxy = proxy
	}

	if p.Chrome != nil {
		p.Chrome.Apply(req, w)
	}

	p.logger().Debug("window request resolved",
		"source", req.Source,
		"width", req.Width,
		"height", req.Height,
		"proxy", req.Proxy != nil,
		"title_bar", req.TitleBar,
		"theme", req.Theme,
	)

	return req, nil
}

func resolveSource(w config.WindowConfig) (ContentSource, error) {
	switch w.URLType {
	case config.URLTypeWeb:
		u, err := parseAddress(w.URL)
		if err != nil {
			return ContentSource{}, fmt.Errorf("url: %w", err)
		}
		return Remote(u), nil
	case config.URLTypeLocal:
		return Bundled(w.URL), nil
	default:
		return ContentSource{}, fmt.Errorf("%w: url type can only be web or local, got %q", ErrConfiguration, w.URLType)
	}
}

// parseAddress parses an absolute address with a scheme and a host.
func parseAddress(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressParse, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute address", ErrAddressParse, raw)
	}
	return u, nil
}

func (p *Provisioner) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.New(io.Discard)
}
