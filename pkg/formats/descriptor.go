package formats

import (
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/locale"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"gopkg.in/ini.v1"
)

// DescriptorGroup is the key file group holding descriptor fields
const DescriptorGroup = "Desktop Entry"

// Descriptor is an application-declared sub-directory of a built-in role
type Descriptor struct {
	Parent types.Role
	// Name is the label for the active locale
	Name string
}

// ParseDescriptor reads the Parent key and the best Name[...] match for
// localeName, following the desktop entry locale rules.
func ParseDescriptor(data []byte, localeName string) (*Descriptor, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid descriptor")
	}

	section, err := f.GetSection(DescriptorGroup)
	if err != nil {
		return nil, errors.Newf(errors.ErrParse, "missing [%s] group", DescriptorGroup)
	}

	parent := section.Key("Parent").String()
	if parent == "" {
		return nil, errors.New(errors.ErrParse, "missing Parent key")
	}

	name := localizedValue(section, "Name", localeName)
	if name == "" {
		return nil, errors.New(errors.ErrParse, "missing Name key")
	}

	return &Descriptor{Parent: types.Role(parent), Name: name}, nil
}

func localizedValue(section *ini.Section, key, localeName string) string {
	for _, variant := range locale.Variants(localeName) {
		if k, err := section.GetKey(key + "[" + variant + "]"); err == nil && k.String() != "" {
			return k.String()
		}
	}
	return section.Key(key).String()
}
