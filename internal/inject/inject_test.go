package inject_test

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/pake/internal/config"
	"github.com/mpyw/pake/internal/inject"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	b := inject.Default()
	assert.NotEmpty(t, b.Component)
	assert.NotEmpty(t, b.Event)
	assert.NotEmpty(t, b.Style)
	assert.NotEmpty(t, b.Custom)
}

func TestBundle_Sequence(t *testing.T) {
	t.Parallel()

	b := inject.Bundle{
		Component: []byte("c"),
		Event:     []byte("e"),
		Style:     []byte("s"),
		Custom:    []byte("x"),
	}

	seq := b.Sequence("cfg")

	names := lo.Map(seq, func(s inject.Script, _ int) string { return s.Name })
	bodies := lo.Map(seq, func(s inject.Script, _ int) string { return s.Body })

	assert.Equal(t, []string{
		inject.NameConfig,
		inject.NameComponent,
		inject.NameEvent,
		inject.NameStyle,
		inject.NameCustom,
	}, names)
	assert.Equal(t, []string{"cfg", "c", "e", "s", "x"}, bodies)
}

func TestConfigScript_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w    config.WindowConfig
	}{
		{
			name: "web window",
			w: config.WindowConfig{
				URL:       "https://example.com",
				URLType:   config.URLTypeWeb,
				Width:     800,
				Height:    600,
				Resizable: true,
			},
		},
		{
			name: "local window with chrome flags",
			w: config.WindowConfig{
				URL:                  "dist/index.html",
				URLType:              config.URLTypeLocal,
				HideTitleBar:         true,
				DarkMode:             true,
				Fullscreen:           true,
				AlwaysOnTop:          true,
				Width:                1024.5,
				Height:               768,
				ActivationShortcut:   "CmdOrControl+Shift+P",
				DisabledWebShortcuts: true,
			},
		},
		{
			name: "zero value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			script, err := inject.ConfigScript(tt.w)
			require.NoError(t, err)

			const prefix = "window.pakeConfig = "
			require.True(t, strings.HasPrefix(script, prefix))

			var got config.WindowConfig
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(script, prefix)), &got))
			assert.Equal(t, tt.w, got)
		})
	}
}

func TestConfigScript_Keys(t *testing.T) {
	t.Parallel()

	script, err := inject.ConfigScript(config.WindowConfig{URLType: config.URLTypeWeb, HideTitleBar: true})
	require.NoError(t, err)

	assert.Contains(t, script, `"url_type":"web"`)
	assert.Contains(t, script, `"hide_title_bar":true`)
}

func TestBundle_WithCustom(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"a.js":     {Data: []byte("window.a = 1")},
		"dir/b.js": {Data: []byte("window.b = 2\n")},
	}
	base := inject.Bundle{Custom: []byte("// custom")}

	got, err := base.WithCustom(files, []string{"a.js", "dir/b.js"})
	require.NoError(t, err)
	assert.Equal(t, "// custom\nwindow.a = 1\nwindow.b = 2\n", string(got.Custom))
	assert.Equal(t, "// custom", string(base.Custom))

	same, err := base.WithCustom(files, nil)
	require.NoError(t, err)
	assert.Equal(t, base, same)

	_, err = base.WithCustom(files, []string{"missing.js"})
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "inject missing.js")
}
