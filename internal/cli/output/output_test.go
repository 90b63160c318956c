package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Field(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf)

	w.Field("Source", "https://weread.qq.com/")

	output := buf.String()
	assert.Contains(t, output, "Source:")
	assert.Contains(t, output, "https://weread.qq.com/")
}

func TestWriter_Flag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		on   bool
		want string
	}{
		{name: "on", on: true, want: "yes"},
		{name: "off", on: false, want: "no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			New(&buf).Flag("Resizable", tt.on)

			assert.Contains(t, buf.String(), "Resizable:")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestWriter_Separator(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf)

	w.Separator()

	assert.Equal(t, "\n", buf.String())
}

func TestWriter_Value(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		value    string
		contains []string
	}{
		{
			name:     "single line",
			value:    "test-value",
			contains: []string{"  test-value"},
		},
		{
			name:     "multi line",
			value:    "line1\nline2\nline3",
			contains: []string{"  line1", "  line2", "  line3"},
		},
		{
			name:     "empty",
			value:    "",
			contains: []string{"  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			w := New(&buf)

			w.Value(tt.value)

			output := buf.String()
			for _, expected := range tt.contains {
				assert.Contains(t, output, expected)
			}
		})
	}
}

func TestWarning(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Warning(&buf, "test %s", "message")
	assert.Contains(t, buf.String(), "Warning:")
	assert.Contains(t, buf.String(), "test message")
}

func TestHint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Hint(&buf, "try %s", "this")
	assert.Contains(t, buf.String(), "Hint:")
	assert.Contains(t, buf.String(), "try this")
}

func TestError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Error(&buf, "error %d", 42)
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "error 42")
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Success(&buf, "Window request for %s is valid", "pake")
	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "Window request for pake is valid")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"yaml": FormatText,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseFormat(in), in)
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		prefix   string
		expected string
	}{
		{
			name:     "single line",
			input:    "hello",
			prefix:   "  ",
			expected: "  hello",
		},
		{
			name:     "multi line",
			input:    "line1\nline2\nline3",
			prefix:   "> ",
			expected: "> line1\n> line2\n> line3",
		},
		{
			name:     "empty string",
			input:    "",
			prefix:   "  ",
			expected: "",
		},
		{
			name:     "empty lines preserved",
			input:    "line1\n\nline3",
			prefix:   "  ",
			expected: "  line1\n\n  line3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Indent(tt.input, tt.prefix)
			assert.Equal(t, tt.expected, result)
		})
	}
}
