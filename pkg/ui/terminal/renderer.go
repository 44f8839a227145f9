// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
	"github.com/endlessm/xdg-user-dirs/pkg/ui/styles"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderListing renders assignments as an aligned, styled table
func (r *Renderer) RenderListing(l *display.Listing) error {
	width := 0
	for _, e := range l.Entries {
		width = max(width, lipgloss.Width(e.Role))
	}

	roleStyle := styles.GetStyle("Role").Width(width + 2).PaddingRight(2)
	var b strings.Builder
	b.WriteString(styles.GetStyle("Header").Render("User directories in " + l.Home))
	b.WriteString("\n")
	for _, e := range l.Entries {
		path := styles.GetStyle("Path").Render(e.Path)
		if !e.Exists {
			path = styles.GetStyle("Missing").Render(e.Path + " (missing)")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, roleStyle.Render(e.Role), path))
		b.WriteString("\n")
	}
	if n := l.Missing(); n > 0 {
		b.WriteString(styles.GetStyle("Muted").Render(fmt.Sprintf("%d missing, run xdg-user-dirs-update to repair", n)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
