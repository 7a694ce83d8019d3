package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// console writes the user-facing progress lines. Styling is applied only
// when the destination is a terminal.
type console struct {
	out    io.Writer
	errOut io.Writer
	tty    bool
	errTTY bool

	titleStyle lipgloss.Style
	okStyle    lipgloss.Style
	dimStyle   lipgloss.Style
	warnStyle  lipgloss.Style
	errStyle   lipgloss.Style
}

func newConsole(out, errOut io.Writer) *console {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &console{
		out:        out,
		errOut:     errOut,
		tty:        isTerminal(out),
		errTTY:     isTerminal(errOut),
		titleStyle: r.NewStyle().Bold(true),
		okStyle:    r.NewStyle().Foreground(lipgloss.Color("42")),
		dimStyle:   r.NewStyle().Faint(true),
		warnStyle:  er.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		errStyle:   er.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(tty bool, s lipgloss.Style, text string) string {
	if !tty {
		return text
	}
	return s.Render(text)
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *console) title(format string, args ...any) {
	fmt.Fprintln(c.out, paint(c.tty, c.titleStyle, fmt.Sprintf(format, args...)))
}

func (c *console) target(dir string, size int) {
	mark := "ok"
	if c.tty {
		mark = "✅"
	}
	fmt.Fprintf(c.out, "  %s %s: %dx%dpx\n", paint(c.tty, c.okStyle, mark), dir, size, size)
}

func (c *console) hint(format string, args ...any) {
	fmt.Fprintln(c.out, paint(c.tty, c.dimStyle, fmt.Sprintf(format, args...)))
}

func (c *console) warnf(format string, args ...any) {
	fmt.Fprintln(c.errOut, paint(c.errTTY, c.warnStyle, fmt.Sprintf(format, args...)))
}

func (c *console) errorf(format string, args ...any) {
	fmt.Fprintln(c.errOut, paint(c.errTTY, c.errStyle, fmt.Sprintf(format, args...)))
}
