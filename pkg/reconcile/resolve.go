package reconcile

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Resolve computes the default location of entry for the active locale.
//
// Descriptor-derived entries are placed under the parent's current
// assignment in m when it is not the home directory, otherwise under the
// parent's localized template. Their label is already localized and is
// only transcoded.
func Resolve(ctx *Context, entry types.DefaultEntry, m *mapping.Mapping) (types.Resolved, error) {
	var rel string
	if entry.IsDerived() {
		label := ctx.encode(entry.Label)
		if parent, ok := m.Get(entry.Parent); ok && parent.Path != "" {
			rel = parent.Path + "/" + label
		} else {
			parentTemplate := strings.TrimSuffix(entry.Template, "/"+entry.Label)
			rel = ctx.encode(ctx.translateTemplate(parentTemplate)) + "/" + label
		}
	} else {
		rel = ctx.encode(ctx.translateTemplate(entry.Template))
	}

	if rel == ".." || strings.HasPrefix(rel, "../") {
		return types.Resolved{}, errors.Newf(errors.ErrInvalidInput,
			"default location %q of %s is outside the home directory", rel, entry.Role).
			WithDetail("role", string(entry.Role))
	}
	return resolved(ctx.Home, rel), nil
}

// translateTemplate localizes each segment of a slash-separated template,
// keeping a leading slash
func (ctx *Context) translateTemplate(template string) string {
	absolute := strings.HasPrefix(template, "/")
	segments := strings.Split(strings.TrimPrefix(template, "/"), "/")
	for i, segment := range segments {
		segments[i] = ctx.Translator.Translate(segment)
	}
	out := strings.Join(segments, "/")
	if absolute {
		return "/" + out
	}
	return out
}

// encode converts to the filename encoding, keeping UTF-8 on failure
func (ctx *Context) encode(s string) string {
	out, err := ctx.Encoder.Encode(s)
	if err != nil {
		ctx.Logger.Warn().Err(err).Str("name", s).Msg("Cannot convert name to filename encoding, using UTF-8")
		return s
	}
	return out
}

func resolved(home, rel string) types.Resolved {
	if strings.HasPrefix(rel, "/") {
		return types.Resolved{Abs: rel, Rel: rel}
	}
	return types.Resolved{Abs: paths.Absolute(home, rel), Rel: rel}
}
