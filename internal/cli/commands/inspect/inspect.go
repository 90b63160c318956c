// Package inspect provides the command that prints the resolved window request.
package inspect

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/pake/internal/cli/colors"
	"github.com/mpyw/pake/internal/cli/commands/internal"
	"github.com/mpyw/pake/internal/cli/output"
	"github.com/mpyw/pake/internal/cli/pager"
	"github.com/mpyw/pake/internal/cli/terminal"
	"github.com/mpyw/pake/internal/contentserver"
	"github.com/mpyw/pake/internal/inject"
	"github.com/mpyw/pake/internal/window"
)

// Runner executes the inspect command.
type Runner struct {
	Env    *internal.Env
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the inspect command.
type Options struct {
	Scripts bool
	NoPager bool
	Output  output.Format
}

// JSONOutput represents the JSON output structure for the inspect command.
type JSONOutput struct {
	Label         string         `json:"label"`
	Source        string         `json:"source"`
	Title         string         `json:"title"`
	Visible       bool           `json:"visible"`
	UserAgent     string         `json:"user_agent"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	Resizable     bool           `json:"resizable"`
	Fullscreen    bool           `json:"fullscreen"`
	AlwaysOnTop   bool           `json:"always_on_top"`
	FileDrop      bool           `json:"file_drop"`
	Proxy         string         `json:"proxy,omitempty"`
	TitleBar      string         `json:"title_bar"`
	Theme         string         `json:"theme"`
	DataDirectory string         `json:"data_directory,omitempty"`
	Scripts       []ScriptOutput `json:"scripts"`
}

// ScriptOutput describes one init script.
type ScriptOutput struct {
	Name   string `json:"name"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
	Body   string `json:"body,omitempty"`
}

// Command returns the inspect command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Show the window request without opening a window",
		Description: `Resolve the configuration exactly as "open" does and print the resulting window
request: content source, size, chrome, proxy, data directory and init scripts in
injection order.

Use --scripts to include the full script bodies.
Use --output=json for structured JSON output.

EXAMPLES:
  pake inspect                          Show the request of ./pake.json
  pake inspect --scripts                Include script bodies
  pake --config app.yaml inspect --output=json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "scripts",
				Usage: "Include init script bodies",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		CommandNotFound: internal.CommandNotFound,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	env, err := internal.LoadEnv(cmd)
	if err != nil {
		return err
	}

	opts := Options{
		Scripts: cmd.Bool("scripts"),
		NoPager: cmd.Bool("no-pager"),
		Output:  output.ParseFormat(cmd.String("output")),
	}

	noPager := opts.NoPager || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			Env:    env,
			Stdout: w,
			Stderr: cmd.Root().ErrWriter,
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the inspect command.
func (r *Runner) Run(_ context.Context, opts Options) error {
	rec := &window.Recorder{}
	if _, err := r.Env.Provisioner(rec).Provision(r.Env.Config); err != nil {
		return err
	}
	req := rec.Last()

	if n := len(r.Env.Config.Windows); n > 1 {
		output.Warning(r.Stderr, "ignoring %d extra window configuration(s)", n-1)
		output.Hint(r.Stderr, "only the first entry of windows is used")
	}

	if _, err := contentserver.New(contentserver.Options{Request: req, Resources: r.Env.Resources}); err != nil {
		output.Warning(r.Stderr, "content will not load: %v", err)
	}

	if opts.Output == output.FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(toJSON(req, opts.Scripts))
	}

	out := output.New(r.Stdout)
	out.Field("Label", req.Label)
	out.Field("Source", req.Source.String())
	out.Field("Title", lo.Ternary(req.Title == "", "(none)", req.Title))
	out.Field("User-Agent", lo.Ternary(req.UserAgent == "", "(platform default)", req.UserAgent))
	out.Field("Size", fmt.Sprintf("%gx%g", req.Width, req.Height))
	out.Flag("Resizable", req.Resizable)
	out.Flag("Fullscreen", req.Fullscreen)
	out.Flag("Always on top", req.AlwaysOnTop)
	out.Flag("File drop", req.DragDropHandler)
	out.Field("Title bar", req.TitleBar.String())
	out.Field("Theme", req.Theme.String())
	out.Field("Proxy", lo.TernaryF(req.Proxy == nil, func() string { return "(none)" }, func() string { return req.Proxy.String() }))
	if req.DataDirectory != "" {
		out.Field("Data directory", req.DataDirectory)
	}

	out.Field("Scripts", fmt.Sprintf("%d script(s)", len(req.InitScripts)))
	width := terminal.GetWidthFromWriter(r.Stdout)
	for _, s := range req.InitScripts {
		label := "  " + s.Name
		preview := fmt.Sprintf("%d bytes  %s", len(s.Body), firstLine(s.Body))
		out.Field(colors.ScriptName(label), terminal.Truncate(preview, max(width-len(label)-2, 10)))
	}

	if opts.Scripts {
		for _, s := range req.InitScripts {
			out.Separator()
			output.Println(r.Stdout, colors.ScriptName("// "+s.Name))
			out.Value(s.Body)
		}
	}

	return nil
}

func toJSON(req *window.Request, withBodies bool) JSONOutput {
	return JSONOutput{
		Label:         req.Label,
		Source:        req.Source.String(),
		Title:         req.Title,
		Visible:       req.Visible,
		UserAgent:     req.UserAgent,
		Width:         req.Width,
		Height:        req.Height,
		Resizable:     req.Resizable,
		Fullscreen:    req.Fullscreen,
		AlwaysOnTop:   req.AlwaysOnTop,
		FileDrop:      req.DragDropHandler,
		Proxy:         lo.TernaryF(req.Proxy == nil, func() string { return "" }, func() string { return req.Proxy.String() }),
		TitleBar:      req.TitleBar.String(),
		Theme:         req.Theme.String(),
		DataDirectory: req.DataDirectory,
		Scripts: lo.Map(req.InitScripts, func(s inject.Script, _ int) ScriptOutput {
			sum := sha256.Sum256([]byte(s.Body))
			return ScriptOutput{
				Name:   s.Name,
				Bytes:  len(s.Body),
				SHA256: hex.EncodeToString(sum[:]),
				Body:   lo.Ternary(withBodies, s.Body, ""),
			}
		}),
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
