package types

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
)

// DescriptorSuffix marks roles contributed by directory descriptor documents
const DescriptorSuffix = ".desktop"

// Role identifies a special-purpose directory: either an uppercase token
// such as MUSIC, or a descriptor id such as org.example.Shots.desktop.
type Role string

// IsDescriptor reports whether the role lives in the descriptor namespace
func (r Role) IsDescriptor() bool {
	return strings.HasSuffix(string(r), DescriptorSuffix)
}

func (r Role) String() string {
	return string(r)
}

// Validate checks the role is usable as a key in the user mapping file
func (r Role) Validate() error {
	s := string(r)
	if s == "" {
		return errors.New(errors.ErrInvalidInput, "empty directory name")
	}

	if r.IsDescriptor() {
		stem := strings.TrimSuffix(s, DescriptorSuffix)
		if stem == "" || strings.ContainsAny(stem, "/=\"\\$` \t\n") {
			return errors.Newf(errors.ErrInvalidInput, "invalid descriptor id %q", s).
				WithDetail("role", s)
		}
		return nil
	}

	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return errors.Newf(errors.ErrInvalidInput, "invalid directory name %q", s).
				WithDetail("role", s)
		}
	}
	return nil
}
