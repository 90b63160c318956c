package contentserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/mpyw/pake/internal/inject"
)

type remote struct {
	target *url.URL
	origin *url.URL

	userAgent string
	scripts   []inject.Script
	hashes    []string
	jar       http.CookieJar
	logger    *log.Logger

	proxy   *httputil.ReverseProxy
	entered atomic.Bool
}

func newRemote(opts Options) (*remote, error) {
	req := opts.Request
	target := req.Source.URL()
	if target == nil || target.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrSource, req.Source)
	}

	h := &remote{
		target:    target,
		origin:    &url.URL{Scheme: target.Scheme, Host: target.Host},
		userAgent: req.UserAgent,
		scripts:   req.InitScripts,
		hashes:    ScriptHashes(req.InitScripts),
		jar:       opts.Jar,
		logger:    opts.Logger,
	}

	transport := opts.Transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if req.Proxy != nil {
			t.Proxy = http.ProxyURL(req.Proxy)
		}
		transport = t
	}

	h.proxy = &httputil.ReverseProxy{
		Rewrite:        h.rewrite,
		ModifyResponse: h.modifyResponse,
		ErrorHandler:   h.handleError,
		Transport:      transport,
	}

	return h, nil
}

func (h *remote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The shell always starts at the root of its asset origin.
	if h.entered.CompareAndSwap(false, true) && r.URL.Path == "/" && r.URL.RawQuery == "" {
		if start := h.target.RequestURI(); start != "/" {
			http.Redirect(w, r, start, http.StatusFound)
			return
		}
	}

	h.proxy.ServeHTTP(w, r)
}

func (h *remote) rewrite(pr *httputil.ProxyRequest) {
	pr.SetURL(h.origin)

	// Let the transport negotiate compression so HTML bodies arrive decoded.
	pr.Out.Header.Del("Accept-Encoding")

	if h.userAgent != "" {
		pr.Out.Header.Set("User-Agent", h.userAgent)
	}

	if pr.Out.Header.Get("Origin") != "" {
		pr.Out.Header.Set("Origin", h.origin.String())
	}
	if ref, err := url.Parse(pr.In.Header.Get("Referer")); err == nil && ref.Host != "" && ref.Host == pr.In.Host {
		ref.Scheme, ref.Host = h.origin.Scheme, h.origin.Host
		pr.Out.Header.Set("Referer", ref.String())
	}

	if h.jar != nil {
		pr.Out.Header.Del("Cookie")
		for _, c := range h.jar.Cookies(pr.Out.URL) {
			pr.Out.AddCookie(c)
		}
	}
}

func (h *remote) modifyResponse(resp *http.Response) error {
	if h.jar != nil {
		if cookies := resp.Cookies(); len(cookies) > 0 {
			h.jar.SetCookies(resp.Request.URL, cookies)
		}
		resp.Header.Del("Set-Cookie")
	}

	if loc := resp.Header.Get("Location"); loc != "" {
		resp.Header.Set("Location", h.localize(resp.Request.URL, loc))
	}

	if !isHTML(resp.Header.Get("Content-Type")) || len(h.scripts) == 0 {
		return nil
	}
	if enc := resp.Header.Get("Content-Encoding"); enc != "" && enc != "identity" {
		h.logger.Debug("leaving encoded document untouched", "url", resp.Request.URL, "encoding", enc)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("read upstream document: %w", err)
	}

	doc := InjectHTML(body, h.scripts)
	resp.Body = io.NopCloser(bytes.NewReader(doc))
	resp.ContentLength = int64(len(doc))
	resp.Header.Set("Content-Length", strconv.Itoa(len(doc)))

	if policies := resp.Header.Values("Content-Security-Policy"); len(policies) > 0 {
		resp.Header.Del("Content-Security-Policy")
		for _, p := range policies {
			resp.Header.Add("Content-Security-Policy", AllowScripts(p, h.hashes))
		}
	}

	return nil
}

// localize turns redirects to the proxied origin into local paths.
func (h *remote) localize(base *url.URL, loc string) string {
	u, err := base.Parse(loc)
	if err != nil || u.Scheme != h.origin.Scheme || u.Host != h.origin.Host {
		return loc
	}

	local := u.RequestURI()
	if u.Fragment != "" {
		local += "#" + u.EscapedFragment()
	}
	return local
}

func (h *remote) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("upstream request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	http.Error(w, "upstream unavailable", http.StatusBadGateway)
}
