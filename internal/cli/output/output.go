// Package output renders command results in text, markdown, or JSON.
//
// Mode "auto" picks styled text on a terminal and markdown when output is
// piped, so scripts and agents get a stable, parseable format without
// extra flags.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	profile termenv.Profile
}

// NewRenderer creates a Renderer. With ModeAuto the effective mode is
// resolved from whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{
		out:     out,
		errOut:  errOut,
		mode:    mode,
		profile: termenv.Ascii,
	}
	if isTerminal(out) {
		r.profile = termenv.NewOutput(out).Profile
	}
	return r
}

// EffectiveMode resolves ModeAuto against the output destination.
func (r *Renderer) EffectiveMode() Mode {
	switch r.mode {
	case ModeAuto, "":
		if isTerminal(r.out) {
			return ModeText
		}
		return ModeMarkdown
	case ModeText, ModeMarkdown, ModeJSON:
		return r.mode
	default:
		return ModeText
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Println writes a line to the output stream.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a styled section header.
func (r *Renderer) Header(level int, s string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, s))
		return
	}
	r.Println(termenv.String(s).Bold().String())
}

// Muted writes de-emphasized text.
func (r *Renderer) Muted(s string) {
	if r.EffectiveMode() == ModeText {
		r.Println(termenv.String(s).Faint().String())
		return
	}
	r.Println(s)
}

// StatusLine writes one "name: status (detail)" line, coloring the status
// in text mode.
func (r *Renderer) StatusLine(name, status, detail string) {
	s := status
	if r.EffectiveMode() == ModeText {
		styled := termenv.String(status)
		switch status {
		case "success", "ok":
			styled = styled.Foreground(r.profile.Color("2"))
		case "warning":
			styled = styled.Foreground(r.profile.Color("3"))
		default:
			styled = styled.Foreground(r.profile.Color("1"))
		}
		s = styled.String()
	}
	if detail != "" {
		r.Printf("  %-20s %s  %s\n", name, s, detail)
		return
	}
	r.Printf("  %-20s %s\n", name, s)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders headers and rows, as a go-pretty table in text mode and as
// a markdown table otherwise.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatTable(headers, rows))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	hdr := make(table.Row, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	t.AppendHeader(hdr)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, c := range row {
			tr[i] = c
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, s string) string {
	return strings.Repeat("#", level) + " " + s
}

// FormatKeyValue returns a markdown "**Key:** value" line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("**%s:** %s", key, value)
}

// FormatTable returns a markdown table.
func FormatTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
