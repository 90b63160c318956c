//go:build linux

package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/pake/internal/shell"
	"github.com/mpyw/pake/internal/window"
)

func TestLinuxOptions(t *testing.T) {
	t.Parallel()

	h, err := shell.Creator{}.Create(remote(t))
	require.NoError(t, err)

	app := h.(*shell.Window).App
	require.NotNil(t, app.Linux)
	assert.Equal(t, window.Label, app.Linux.ProgramName)
	assert.Nil(t, app.Mac)
	assert.Nil(t, app.Windows)
}
