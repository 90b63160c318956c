//go:build !desktop

package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/pake/internal/shell"
)

func TestWindow_RunWithoutRuntime(t *testing.T) {
	t.Parallel()

	h, err := shell.Creator{}.Create(remote(t))
	require.NoError(t, err)

	assert.ErrorIs(t, h.Run(), shell.ErrUnavailable)
}
