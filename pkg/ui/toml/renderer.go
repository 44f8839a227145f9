// Package toml provides TOML output
package toml

import (
	"io"

	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Renderer writes TOML documents
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderListing renders the listing with one [[directories]] table per entry
func (r *Renderer) RenderListing(l *display.Listing) error {
	return gotoml.NewEncoder(r.output).Encode(l)
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	return gotoml.NewEncoder(r.output).Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return gotoml.NewEncoder(r.output).Encode(map[string]string{"message": msg})
}
