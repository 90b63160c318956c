package cookiestore

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "/",
		"relative":    "/",
		"/":           "/",
		"/a":          "/",
		"/a/b":        "/a",
		"/a/b/":       "/a/b",
		"/app/x.html": "/app",
	}

	for in, want := range tests {
		assert.Equal(t, want, defaultPath(in), in)
	}
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	exp, ok := expiry(&http.Cookie{MaxAge: 10}, now)
	assert.True(t, ok)
	assert.Equal(t, now.Add(10*time.Second), exp)

	exp, ok = expiry(&http.Cookie{MaxAge: -1}, now)
	assert.True(t, ok)
	assert.False(t, exp.After(now))

	at := now.Add(time.Hour)
	exp, ok = expiry(&http.Cookie{Expires: at}, now)
	assert.True(t, ok)
	assert.Equal(t, at, exp)

	_, ok = expiry(&http.Cookie{}, now)
	assert.False(t, ok)
}
