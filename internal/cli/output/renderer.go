// Package output renders extraction results across output formats.
//
// Output adapts to the environment: styled tables on a terminal,
// markdown when piped, and JSON/CSV for machine consumption.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeCSV      Mode = "csv"
)

// Renderer writes results in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. ModeAuto (or an empty mode) picks text
// on a terminal and markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" || mode == ModeAuto {
		mode = detectMode(out)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: DefaultStyles(),
	}
}

// detectMode picks text for terminals and markdown for pipes.
func detectMode(w io.Writer) Mode {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Mode returns the effective output mode after auto-detection.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Heading writes a section heading. Suppressed in machine-readable modes.
func (r *Renderer) Heading(text string) {
	switch r.mode {
	case ModeJSON, ModeCSV:
	case ModeText:
		fmt.Fprintln(r.out, r.styles.Header.Render(text))
	default:
		fmt.Fprintf(r.out, "## %s\n\n", text)
	}
}

// Infof writes a status line to stderr so it never corrupts piped output.
func (r *Renderer) Infof(format string, args ...any) {
	fmt.Fprintf(r.errOut, format+"\n", args...)
}

// Errorf writes a styled error line to stderr.
func (r *Renderer) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.mode == ModeText {
		msg = r.styles.Error.Render(msg)
	}
	fmt.Fprintln(r.errOut, msg)
}

// Table renders tabular data in the current mode. JSON mode emits one
// object per row keyed by column name; CSV emits a header row first.
func (r *Renderer) Table(cols []string, rows [][]string) error {
	switch r.mode {
	case ModeJSON:
		objs := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]string, len(cols))
			for i, col := range cols {
				if i < len(row) {
					obj[col] = row[i]
				}
			}
			objs = append(objs, obj)
		}
		return r.JSON(objs)

	case ModeCSV:
		w := csv.NewWriter(r.out)
		if err := w.Write(cols); err != nil {
			return err
		}
		if err := w.WriteAll(rows); err != nil {
			return err
		}
		w.Flush()
		return w.Error()

	default:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)

		headerRow := make(table.Row, len(cols))
		for i, col := range cols {
			headerRow[i] = col
		}
		t.AppendHeader(headerRow)

		for _, row := range rows {
			tr := make(table.Row, len(row))
			for i, cell := range row {
				tr[i] = cell
			}
			t.AppendRow(tr)
		}

		if r.mode == ModeMarkdown {
			t.RenderMarkdown()
		} else {
			t.Render()
		}
		fmt.Fprintf(r.out, "(%d rows)\n", len(rows))
		return nil
	}
}

// JSON writes v as indented JSON regardless of mode.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
