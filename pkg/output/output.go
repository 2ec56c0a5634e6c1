// Package output provides terminal output formatting for gitfetch.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Printer handles terminal output. Colour is applied only when the
// destination is a terminal.
type Printer struct {
	out    io.Writer
	logger *log.Logger
	isTTY  bool
}

// NewWithWriter creates a Printer sending everything to w.
func NewWithWriter(w io.Writer) *Printer {
	return NewWithWriters(w, w)
}

// NewWithWriters creates a Printer writing results to out and warnings and
// errors to errOut.
func NewWithWriters(out, errOut io.Writer) *Printer {
	logger := log.NewWithOptions(errOut, log.Options{
		ReportTimestamp: false,
	})

	if isTerminal(errOut) {
		logger.SetStyles(logStyles())
	}

	return &Printer{
		out:    out,
		logger: logger,
		isTTY:  isTerminal(out),
	}
}

// isTerminal checks if the writer is a TTY (for color support).
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Info logs an info message with optional key-value pairs.
func (p *Printer) Info(msg string, keyvals ...any) {
	p.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (p *Printer) Warn(msg string, keyvals ...any) {
	p.logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (p *Printer) Error(msg string, keyvals ...any) {
	p.logger.Error(msg, keyvals...)
}

// Colored writes text in the given colour. Each line is styled on its own
// so the block keeps its original shape.
func (p *Printer) Colored(text string, c lipgloss.Color) {
	if !p.isTTY {
		fmt.Fprintln(p.out, text)
		return
	}

	style := lipgloss.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	fmt.Fprintln(p.out, strings.Join(lines, "\n"))
}

// Banner prints the ASCII logo with version information.
func (p *Printer) Banner(ver string) {
	if !p.isTTY {
		fmt.Fprintf(p.out, "gitfetch %s\n\n", ver)
		return
	}

	git := lipgloss.NewStyle().Foreground(Palette[0].Color)
	fetch := lipgloss.NewStyle().Foreground(ColorWhite)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	for i := range bannerGit {
		fmt.Fprint(p.out, git.Render(bannerGit[i]))
		if i < len(bannerFetch) && bannerFetch[i] != "" {
			fmt.Fprint(p.out, fetch.Render(bannerFetch[i]))
		}
		fmt.Fprintln(p.out)
	}

	fmt.Fprintf(p.out, "\n  %s %s\n\n", muted.Render("version"), git.Render(ver))
}

// Banner split into "git" and "fetch" parts, standard figlet font.
var bannerGit = []string{
	`       _ _   `,
	`  __ _(_) |_ `,
	` / _' | | __|`,
	`| (_| | | |_ `,
	` \__, |_|\__|`,
	` |___/       `,
}

var bannerFetch = []string{
	` __      _       _     `,
	`/ _| ___| |_ ___| |__  `,
	`| |_ / _ \ __/ __| '_ \ `,
	`|  _|  __/ || (__| | | |`,
	`|_|  \___|\__\___|_| |_|`,
	``,
}
