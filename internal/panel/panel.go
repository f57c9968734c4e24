package panel

import (
	"fmt"

	"github.com/1broseidon/stagehand/internal/geom"
)

// Kind identifies one of the fixed floating panels. The set is closed: panels
// are created once at startup and only toggled open or closed afterwards.
type Kind string

const (
	// KindChat is the conversation panel.
	KindChat Kind = "chat"
	// KindJobs is the scheduled-jobs panel.
	KindJobs Kind = "jobs"
	// KindAgentConfig is the agent-configuration panel.
	KindAgentConfig Kind = "agentconfig"
)

// Kinds returns all panel kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindChat, KindJobs, KindAgentConfig}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindChat, KindJobs, KindAgentConfig:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown panel %q (valid: chat, jobs, agentconfig)", s)
	}
}

// State is the committed state of one panel. Restore is non-nil exactly while
// Maximized is true and holds the geometry captured at the moment of
// maximizing.
type State struct {
	Open      bool
	Rect      geom.Rect
	Z         int
	Maximized bool
	Restore   *geom.Rect
}

// clone returns a deep copy of the state.
func (s State) clone() State {
	if s.Restore != nil {
		r := *s.Restore
		s.Restore = &r
	}
	return s
}

// Snapshot is an immutable copy of all panel states, keyed by kind. It is the
// sole externally observable output of the registry.
type Snapshot map[Kind]State

// clone returns a deep copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, st := range s {
		out[k] = st.clone()
	}
	return out
}
