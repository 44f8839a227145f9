// Package catalog assembles the default roles: the built-in roles of the
// user-dirs.defaults file plus the sub-roles declared by directory
// descriptors.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/formats"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Options contains the inputs of Build
type Options struct {
	FS    types.FS
	Paths paths.Paths
	// Locale selects the descriptor Name[...] variant
	Locale string
}

// Catalog is the set of default roles in declaration order: built-in roles
// first, then descriptor roles
type Catalog struct {
	Entries []types.DefaultEntry
	// Source is the defaults file that was used
	Source string
	// Descriptors lists the descriptor files that contributed a role
	Descriptors []string
}

// Get returns the entry for role
func (c *Catalog) Get(role types.Role) (types.DefaultEntry, bool) {
	for _, e := range c.Entries {
		if e.Role == role {
			return e, true
		}
	}
	return types.DefaultEntry{}, false
}

// Build loads the first defaults file found in the config search path and
// every descriptor in the data search path. A missing defaults file is an
// ErrCatalogUnavailable.
func Build(opts Options) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	c := &Catalog{}
	for _, candidate := range opts.Paths.ConfigCandidates(paths.DefaultsFileName) {
		data, err := opts.FS.ReadFile(candidate)
		if err != nil {
			continue
		}
		defaults := formats.ParseDefaults(data)
		for _, skipped := range defaults.Skipped {
			logger.Warn().Str("path", candidate).Int("line", skipped.Line).
				Str("reason", skipped.Reason).Msg("Ignoring line in defaults file")
		}
		c.Entries = defaults.Entries
		c.Source = candidate
		break
	}
	if c.Source == "" {
		return nil, errors.New(errors.ErrCatalogUnavailable, "No default user directories")
	}

	logger.Debug().Str("path", c.Source).Int("roles", len(c.Entries)).Msg("Loaded default catalog")

	c.addDescriptors(opts)
	return c, nil
}

func (c *Catalog) addDescriptors(opts Options) {
	logger := logging.GetLogger("catalog")

	builtin := make(map[types.Role]types.DefaultEntry, len(c.Entries))
	for _, e := range c.Entries {
		builtin[e.Role] = e
	}

	seen := make(map[types.Role]bool)
	for _, dir := range opts.Paths.DescriptorDirs() {
		entries, err := opts.FS.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, types.DescriptorSuffix) {
				continue
			}
			role := types.Role(name)
			if seen[role] {
				continue
			}
			seen[role] = true

			path := filepath.Join(dir, name)
			log := logger.With().Str("path", path).Logger()

			if err := role.Validate(); err != nil {
				log.Warn().Err(err).Msg("Ignoring descriptor with invalid id")
				continue
			}

			data, err := opts.FS.ReadFile(path)
			if err != nil {
				log.Warn().Err(err).Msg("Cannot read descriptor")
				continue
			}
			d, err := formats.ParseDescriptor(data, opts.Locale)
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid descriptor")
				continue
			}

			parent, ok := builtin[d.Parent]
			if !ok {
				log.Warn().Str("parent", string(d.Parent)).Msg("Ignoring descriptor with unknown parent")
				continue
			}
			if !validLabel(d.Name) {
				log.Warn().Str("name", d.Name).Msg("Ignoring descriptor with unusable name")
				continue
			}

			c.Entries = append(c.Entries, types.DefaultEntry{
				Role:     role,
				Template: parent.Template + "/" + d.Name,
				Parent:   parent.Role,
				Label:    d.Name,
			})
			c.Descriptors = append(c.Descriptors, path)
			log.Debug().Str("role", string(role)).Str("parent", string(parent.Role)).Msg("Added descriptor role")
		}
	}
}

// validLabel rejects names that are not a single path segment
func validLabel(name string) bool {
	return name != "." && name != ".." && !strings.Contains(name, "/")
}
