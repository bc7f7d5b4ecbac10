package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Row is one line of tabular output.
type Row struct {
	Name     string
	Selector string
	Note     string
}

// Styles controls how styled output looks.
type Styles struct {
	Name     lipgloss.Style
	Selector lipgloss.Style
	Note     lipgloss.Style
}

// DefaultStyles returns the styles used on terminals.
func DefaultStyles() Styles {
	return Styles{
		Name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"}),
		Selector: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}),
		Note:     lipgloss.NewStyle().Faint(true),
	}
}

// IsTerminal reports whether w is a terminal that can take styled output.
func IsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// Table writes rows as aligned "name  selector  note" lines. Selectors are
// written verbatim, including repeated spaces.
func Table(w io.Writer, rows []Row, styled bool) error {
	styles := DefaultStyles()

	nameWidth, selectorWidth := 0, 0
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
		selectorWidth = max(selectorWidth, lipgloss.Width(row.Selector))
	}

	for _, row := range rows {
		name := padRight(row.Name, nameWidth)
		selector := row.Selector
		if row.Note != "" {
			selector = padRight(selector, selectorWidth)
		}
		note := row.Note
		if styled {
			name = styles.Name.Render(name)
			selector = styles.Selector.Render(selector)
			note = styles.Note.Render(note)
		}

		line := name + "  " + selector
		if row.Note != "" {
			line += "  " + note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
