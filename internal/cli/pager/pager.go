// Package pager provides terminal pager functionality for long outputs.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/pake/internal/cli/terminal"
)

//nolint:gochecknoglobals // Replaced in tests
var getTermSize = terminal.GetSize

// WithPagerWriter executes fn with pager support.
// If noPager is true or stdout is not a TTY, output goes directly to the provided writer.
// Otherwise, output is collected and displayed through moor pager unless it fits on one screen.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager || !terminal.IsTerminalWriter(stdout) {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	//nolint:forcetypeassert // IsTerminalWriter guarantees Fder
	if fitsInTerminal(int(stdout.(terminal.Fder).Fd()), buf.String()) {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	return moor.PageFromString(buf.String(), moor.Options{})
}

// fitsInTerminal reports whether content can be shown without scrolling,
// leaving one line for the prompt.
func fitsInTerminal(fd int, content string) bool {
	if fd < 0 {
		return false
	}

	_, height, err := getTermSize(fd)
	if err != nil || height <= 0 {
		return false
	}

	lines := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
