// Package output provides consistent CLI output: plain content on stdout,
// optionally colored status and diagnostics on stderr.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yarp-shell/recentlog/internal/errors"
)

// Writer provides formatted output for the CLI.
type Writer struct {
	out      io.Writer
	useColor bool
	styles   styles
}

type styles struct {
	err  lipgloss.Style
	warn lipgloss.Style
	ok   lipgloss.Style
	dim  lipgloss.Style
}

// New creates a Writer that colors output only when out is a terminal and
// NO_COLOR is unset.
func New(out io.Writer) *Writer {
	return NewWithColor(out, IsTTY(out) && !DetectNoColor())
}

// NewWithColor creates a Writer with color explicitly on or off.
func NewWithColor(out io.Writer, useColor bool) *Writer {
	w := &Writer{out: out, useColor: useColor}
	if useColor {
		w.styles = styles{
			err:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			warn: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("154")),
			dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		}
	}
	return w
}

func (w *Writer) render(style lipgloss.Style, s string) string {
	if !w.useColor {
		return s
	}
	return style.Render(s)
}

// UseColor reports whether the writer emits ANSI styling.
func (w *Writer) UseColor() bool {
	return w.useColor
}

// Content writes text verbatim followed by a single newline.
func (w *Writer) Content(text string) error {
	_, err := fmt.Fprintln(w.out, text)
	return err
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status(w.render(w.styles.ok, "✅"), msg)
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status(w.render(w.styles.warn, "⚠️ "), msg)
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status(w.render(w.styles.err, "❌"), msg)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Diagnostic prints err in the FormatForCLI layout, styling the first line
// as an error and the hint/code lines as secondary text.
func (w *Writer) Diagnostic(err error) {
	text := strings.TrimRight(errors.FormatForCLI(err), "\n")
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			line = w.render(w.styles.err, line)
		} else {
			line = w.render(w.styles.dim, line)
		}
		_, _ = fmt.Fprintln(w.out, line)
	}
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
