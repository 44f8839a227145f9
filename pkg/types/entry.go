package types

// DefaultEntry is one role of the default catalog. Template is a
// slash-separated sequence of label keys, translated at resolution time.
//
// Descriptor-derived entries also carry the Parent role they are anchored
// under and their already-localized Label; Template is then the parent's
// template joined with Label.
type DefaultEntry struct {
	Role     Role
	Template string
	Parent   Role
	Label    string
}

// IsDerived reports whether the entry is anchored under another role
func (e DefaultEntry) IsDerived() bool {
	return e.Parent != ""
}

// UserEntry is one persisted role assignment. Path is absolute, or relative
// to the home directory; the empty string denotes the home directory itself.
type UserEntry struct {
	Role Role
	Path string
}

// Resolved is a concrete location for a role: Abs is the absolute path,
// Rel the form stored in the user mapping (equal to Abs for absolute paths).
type Resolved struct {
	Abs string
	Rel string
}
