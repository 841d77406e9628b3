package core

import "time"

// Session represents one thread's conversational state: an ordered message
// history plus a version counter that increments on every successful append.
// Stores hand out clones, so a Session value in caller hands is a snapshot
// safe for independent inspection.
//
// Contract:
//   - History is strictly ordered by Sequence, no gaps, no duplicates
//   - Version increments once per appended message
//   - Clone performs a deep copy of the history for safe divergence.
type Session struct {
	ThreadID string    `json:"thread_id"`
	History  []Message `json:"history"`
	Version  int       `json:"version"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// NewSession creates an empty session for the given thread.
func NewSession(threadID string) *Session {
	now := time.Now()
	return &Session{ThreadID: threadID, History: []Message{}, Created: now, Updated: now}
}

// LastSequence returns the sequence of the newest message, or 0 when the
// history is empty. Sequences start at 1.
func (s *Session) LastSequence() int {
	if len(s.History) == 0 {
		return 0
	}
	return s.History[len(s.History)-1].Sequence
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	clone := &Session{
		ThreadID: s.ThreadID,
		History:  make([]Message, len(s.History)),
		Version:  s.Version,
		Created:  s.Created,
		Updated:  s.Updated,
	}
	copy(clone.History, s.History)
	return clone
}

// SessionStore persists per-thread sessions. Implementations must make every
// mutating call atomic with respect to concurrent callers on the same thread;
// calls for different threads may proceed fully in parallel.
type SessionStore interface {
	// Get returns a snapshot of the current session, or ok=false when no
	// session exists for the thread. Get has no side effects.
	Get(threadID string) (sess *Session, ok bool, err error)

	// Append atomically creates the session if absent, appends msg with the
	// next sequence number, increments the version and returns the updated
	// snapshot. Any Sequence set on msg is ignored.
	Append(threadID string, msg Message) (*Session, error)

	// AppendTurn atomically appends a user message and its paired assistant
	// reply with consecutive sequence numbers. This is the orchestrator's
	// write path: a turn is either fully recorded or not recorded at all.
	AppendTurn(threadID string, user, assistant Message) (*Session, error)

	// Delete removes all state for the thread. Deleting an absent thread is
	// not an error.
	Delete(threadID string) error
}
