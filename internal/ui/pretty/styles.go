// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	FilePath   lipgloss.Style
	DiffHeader lipgloss.Style
	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
	Success    lipgloss.Style
	Failure    lipgloss.Style
	Dim        lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath: plain, DiffHeader: plain, DiffAdd: plain,
			DiffRemove: plain, Success: plain, Failure: plain, Dim: plain,
		}
	}
	return &Styles{
		FilePath:   lipgloss.NewStyle().Bold(true),
		DiffHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		DiffAdd:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled resolves the --color mode against the output destination.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// TerminalWidth returns the width of the output terminal, or fallback when
// the writer is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
