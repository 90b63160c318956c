package cookiestore_test

import (
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/pake/internal/cookiestore"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func names(cookies []*http.Cookie) []string {
	return lo.Map(cookies, func(c *http.Cookie, _ int) string { return c.Name + "=" + c.Value })
}

func openStore(t *testing.T, path string) *cookiestore.Store {
	t.Helper()

	s, err := cookiestore.Open(t.Context(), path)
	require.NoError(t, err)
	return s
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.db")
	u := mustURL(t, "https://www.example.com/app/index.html")

	s := openStore(t, path)
	s.SetCookies(u, []*http.Cookie{
		{Name: "persistent", Value: "1", MaxAge: 3600},
		{Name: "dated", Value: "2", Expires: time.Now().Add(time.Hour)},
		{Name: "session", Value: "3"},
		{Name: "domain", Value: "4", Domain: "example.com", Path: "/", MaxAge: 3600},
	})
	assert.ElementsMatch(t, []string{"persistent=1", "dated=2", "session=3", "domain=4"}, names(s.Cookies(u)))
	require.NoError(t, s.Close())

	reopened := openStore(t, path)
	t.Cleanup(func() { _ = reopened.Close() })

	assert.ElementsMatch(t, []string{"persistent=1", "dated=2", "domain=4"}, names(reopened.Cookies(u)))
	assert.Equal(t, []string{"domain=4"}, names(reopened.Cookies(mustURL(t, "https://api.example.com/"))))
}

func TestStore_DeleteAndOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.db")
	u := mustURL(t, "https://example.com/")

	s := openStore(t, path)
	s.SetCookies(u, []*http.Cookie{
		{Name: "a", Value: "old", MaxAge: 3600},
		{Name: "b", Value: "1", MaxAge: 3600},
	})
	s.SetCookies(u, []*http.Cookie{
		{Name: "a", Value: "new", MaxAge: 3600},
		{Name: "b", MaxAge: -1},
	})
	require.NoError(t, s.Close())

	reopened := openStore(t, path)
	t.Cleanup(func() { _ = reopened.Close() })

	assert.Equal(t, []string{"a=new"}, names(reopened.Cookies(u)))
}

func TestStore_ExpiredCookiesAreDropped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.db")
	u := mustURL(t, "https://example.com/")

	s := openStore(t, path)
	s.SetCookies(u, []*http.Cookie{{Name: "short", Value: "1", MaxAge: 60}})
	require.NoError(t, s.Close())

	later, err := cookiestore.Open(t.Context(), path, cookiestore.WithClock(func() time.Time {
		return time.Now().Add(2 * time.Minute)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = later.Close() })

	assert.Empty(t, later.Cookies(u))
}

func TestStore_HostsAreIsolated(t *testing.T) {
	t.Parallel()

	s := openStore(t, filepath.Join(t.TempDir(), "cookies.db"))
	t.Cleanup(func() { _ = s.Close() })

	s.SetCookies(mustURL(t, "https://a.example/"), []*http.Cookie{{Name: "a", Value: "1", MaxAge: 60}})

	assert.Empty(t, s.Cookies(mustURL(t, "https://b.example/")))
	assert.Len(t, s.Cookies(mustURL(t, "https://a.example/")), 1)
}

func TestOpen_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := cookiestore.Open(t.Context(), filepath.Join(t.TempDir(), "missing", "dir", "cookies.db"))
	require.Error(t, err)
}
