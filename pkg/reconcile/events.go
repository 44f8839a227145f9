package reconcile

import (
	"fmt"

	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// EventKind classifies what happened to a role during Update
type EventKind int

const (
	// EventCreated means a new assignment was added
	EventCreated EventKind = iota
	// EventMoved means an existing assignment was changed
	EventMoved
	// EventStaleUserPath means an assignment pointed at a missing
	// directory and was reset to the home directory
	EventStaleUserPath
	// EventDirectoryCreateFailure means the directory for a role could not
	// be created; the role is left as it was
	EventDirectoryCreateFailure
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventMoved:
		return "moved"
	case EventStaleUserPath:
		return "stale"
	case EventDirectoryCreateFailure:
		return "create-failed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event records one change or problem for a role
type Event struct {
	Kind EventKind
	Role types.Role
	// From and To are the stored paths before and after
	From string
	To   string
	// Path is the absolute path concerned
	Path string
	// Relocated is set when the previous directory was renamed on disk
	Relocated bool
	// Propagated lists roles rewritten because they were nested under a
	// relocated directory
	Propagated []types.Role
	Err        error
}

// Message renders the event as a user-facing line, "" for silent events
func (e Event) Message() string {
	switch e.Kind {
	case EventMoved:
		return fmt.Sprintf("Moving %s directory from %s to %s", e.Role, e.From, e.To)
	case EventStaleUserPath:
		return fmt.Sprintf("%s was removed, reassigning %s to homedir", e.Path, e.Role)
	case EventDirectoryCreateFailure:
		return fmt.Sprintf("Can't create dir %s", e.Path)
	default:
		return ""
	}
}

// IsError reports whether the event should be shown as a diagnostic
func (e Event) IsError() bool {
	return e.Kind == EventStaleUserPath || e.Kind == EventDirectoryCreateFailure
}
