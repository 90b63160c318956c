// Package cookiestore provides an http.CookieJar persisted in a SQLite database.
//
// Cookie matching is delegated to net/http/cookiejar. Persistent cookies are
// mirrored into the database on every update and replayed into the jar when
// the store is opened, so sessions survive application restarts. Session
// cookies (no Expires and no Max-Age) are kept in memory only.
package cookiestore

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/publicsuffix"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// FileName is the database file kept in the application data directory.
const FileName = "cookies.db"

const schema = `
CREATE TABLE IF NOT EXISTS cookies (
	origin    TEXT    NOT NULL,
	name      TEXT    NOT NULL,
	domain    TEXT    NOT NULL,
	path      TEXT    NOT NULL,
	value     TEXT    NOT NULL,
	expires   INTEGER NOT NULL,
	secure    INTEGER NOT NULL,
	http_only INTEGER NOT NULL,
	same_site INTEGER NOT NULL,
	PRIMARY KEY (origin, name, domain, path)
)`

// Store is a persistent cookie jar.
type Store struct {
	db     *sql.DB
	jar    *cookiejar.Jar
	logger *log.Logger

	mu  sync.Mutex // serializes database writes
	now func() time.Time
}

var _ http.CookieJar = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report write failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens or creates the database at dbPath and loads unexpired cookies.
func Open(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cookie database: %w", err)
	}
	// A single connection keeps SQLite writes serialized.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		jar:    jar,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cookie database: %w", err)
	}

	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Cookies implements http.CookieJar.
func (s *Store) Cookies(u *url.URL) []*http.Cookie {
	return s.jar.Cookies(u)
}

// SetCookies implements http.CookieJar.
func (s *Store) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.jar.SetCookies(u, cookies)

	if err := s.persist(context.Background(), u, cookies); err != nil {
		s.logger.Warn("failed to persist cookies", "host", u.Host, "err", err)
	}
}

func (s *Store) persist(ctx context.Context, u *url.URL, cookies []*http.Cookie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin := originOf(u)
	now := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range cookies {
		cookiePath := c.Path
		if cookiePath == "" || cookiePath[0] != '/' {
			cookiePath = defaultPath(u.Path)
		}

		expires, persistent := expiry(c, now)
		if !persistent {
			continue
		}

		if !expires.After(now) {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM cookies WHERE origin = ? AND name = ? AND domain = ? AND path = ?`,
				origin, c.Name, c.Domain, cookiePath,
			); err != nil {
				return fmt.Errorf("delete cookie %s: %w", c.Name, err)
			}
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cookies (origin, name, domain, path, value, expires, secure, http_only, same_site)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (origin, name, domain, path) DO UPDATE SET
				value = excluded.value,
				expires = excluded.expires,
				secure = excluded.secure,
				http_only = excluded.http_only,
				same_site = excluded.same_site
		`, origin, c.Name, c.Domain, cookiePath, c.Value, expires.Unix(), c.Secure, c.HttpOnly, int(c.SameSite)); err != nil {
			return fmt.Errorf("save cookie %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

func (s *Store) load(ctx context.Context) error {
	now := s.now().Unix()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE expires <= ?`, now); err != nil {
		return fmt.Errorf("purge expired cookies: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT origin, name, domain, path, value, expires, secure, http_only, same_site
		FROM cookies
		ORDER BY origin, path
	`)
	if err != nil {
		return fmt.Errorf("query cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			origin, name, domain, cookiePath, value string
			expires                                 int64
			secure, httpOnly                        bool
			sameSite                                int
		)
		if err := rows.Scan(&origin, &name, &domain, &cookiePath, &value, &expires, &secure, &httpOnly, &sameSite); err != nil {
			return fmt.Errorf("scan cookie: %w", err)
		}

		u, err := url.Parse(origin + cookiePath)
		if err != nil {
			s.logger.Warn("skipping cookie with broken origin", "origin", origin, "err", err)
			continue
		}

		s.jar.SetCookies(u, []*http.Cookie{{
			Name:     name,
			Value:    value,
			Domain:   domain,
			Path:     cookiePath,
			Expires:  time.Unix(expires, 0),
			Secure:   secure,
			HttpOnly: httpOnly,
			SameSite: http.SameSite(sameSite),
		}})
	}

	return rows.Err()
}

// expiry reports the absolute expiry of c and whether c is a persistent cookie.
// A cookie asking for deletion is persistent with an expiry in the past.
func expiry(c *http.Cookie, now time.Time) (time.Time, bool) {
	switch {
	case c.MaxAge < 0:
		return time.Unix(0, 0), true
	case c.MaxAge > 0:
		return now.Add(time.Duration(c.MaxAge) * time.Second), true
	case !c.Expires.IsZero():
		return c.Expires, true
	default:
		return time.Time{}, false
	}
}

func originOf(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}

// defaultPath implements the default-path algorithm of RFC 6265 section 5.1.4.
func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i == 0 {
		return "/"
	}
	return p[:i]
}
