// Package inject provides the scripts inserted into every page before its own content runs.
//
// The four behavior scripts are embedded at build time and treated as opaque text.
// A fifth script, synthesized from the window configuration, always runs first so
// that window.pakeConfig is available to the others.
package inject

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/mpyw/pake/internal/config"
)

// ConfigGlobal is the page-side global that receives the window configuration.
const ConfigGlobal = "pakeConfig"

// Script names in injection order.
const (
	NameConfig    = "config"
	NameComponent = "component"
	NameEvent     = "event"
	NameStyle     = "style"
	NameCustom    = "custom"
)

var (
	//go:embed scripts/component.js
	componentJS []byte
	//go:embed scripts/event.js
	eventJS []byte
	//go:embed scripts/style.js
	styleJS []byte
	//go:embed scripts/custom.js
	customJS []byte
)

// Script is a named initialization script.
type Script struct {
	Name string
	Body string
}

// Bundle holds the fixed behavior scripts.
type Bundle struct {
	Component []byte
	Event     []byte
	Style     []byte
	Custom    []byte
}

// Default returns the scripts embedded in the binary.
func Default() Bundle {
	return Bundle{
		Component: componentJS,
		Event:     eventJS,
		Style:     styleJS,
		Custom:    customJS,
	}
}

// Sequence returns the scripts in injection order: the config script,
// then component, event, style and custom.
func (b Bundle) Sequence(configScript string) []Script {
	return []Script{
		{Name: NameConfig, Body: configScript},
		{Name: NameComponent, Body: string(b.Component)},
		{Name: NameEvent, Body: string(b.Event)},
		{Name: NameStyle, Body: string(b.Style)},
		{Name: NameCustom, Body: string(b.Custom)},
	}
}

// WithCustom returns a copy of b whose custom script is followed by the
// named files of fsys, in order.
func (b Bundle) WithCustom(fsys fs.FS, names []string) (Bundle, error) {
	if len(names) == 0 {
		return b, nil
	}

	var custom bytes.Buffer
	custom.Write(b.Custom)
	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Bundle{}, fmt.Errorf("inject %s: %w", name, err)
		}
		if custom.Len() > 0 && !bytes.HasSuffix(custom.Bytes(), []byte("\n")) {
			custom.WriteByte('\n')
		}
		custom.Write(body)
	}

	b.Custom = custom.Bytes()
	return b, nil
}

// ConfigScript synthesizes the script that assigns the serialized window
// configuration to window.pakeConfig.
func ConfigScript(w config.WindowConfig) (string, error) {
	payload, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("serialize window config: %w", err)
	}
	return fmt.Sprintf("window.%s = %s", ConfigGlobal, payload), nil
}
