// Package ui styles the few decorated lines of the console report.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorCyan  = lipgloss.Color("#2CD7C7")
	colorGreen = lipgloss.Color("#3FB950")
	colorRed   = lipgloss.Color("#E74C3C")
)

// Styles renders text for a specific writer. Writers that are not
// terminals get plain text.
type Styles struct {
	banner lipgloss.Style
	match  lipgloss.Style
	err    lipgloss.Style
}

// NewStyles binds styles to w
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorCyan).
			Foreground(colorCyan).
			Padding(0, 2),
		match: r.NewStyle().Bold(true).Foreground(colorGreen),
		err:   r.NewStyle().Foreground(colorRed),
	}
}

// Banner returns the boxed start banner
func (s *Styles) Banner(version string) string {
	return s.banner.Render("String Matcher " + version + "\n\n" +
		"Generates random strings until one reproduces the target.")
}

// Match highlights a found candidate
func (s *Styles) Match(text string) string {
	return s.match.Render(text)
}

// Error colors an error message
func (s *Styles) Error(text string) string {
	return s.err.Render(text)
}
