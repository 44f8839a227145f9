// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderListing prints one "ROLE  path" line per assignment
func (r *Renderer) RenderListing(l *display.Listing) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, e := range l.Entries {
		suffix := ""
		if !e.Exists {
			suffix = "\t(missing)"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s%s\n", e.Role, e.Path, suffix); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
