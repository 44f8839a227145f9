// Package yaml provides YAML output
package yaml

import (
	"io"

	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
	yamlv3 "gopkg.in/yaml.v3"
)

// Renderer writes YAML documents
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) encode(v interface{}) error {
	enc := yamlv3.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderListing renders the listing as YAML
func (r *Renderer) RenderListing(l *display.Listing) error {
	return r.encode(l)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
