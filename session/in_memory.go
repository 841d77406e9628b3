package session

import (
	"sync"
	"time"

	"github.com/aitalenthub/advisorbot/core"
)

// InMemoryStore is a volatile SessionStore implementation storing sessions in
// a process local map. It is safe for concurrent access and suited for tests,
// demos and single-process deployments that accept losing history on restart.
// Each returned session is cloned to prevent external mutation of internal
// state.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns a snapshot of an existing session, or ok=false when absent.
func (s *InMemoryStore) Get(threadID string) (*core.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[threadID]
	if !ok {
		return nil, false, nil
	}
	return sess.Clone(), true, nil
}

// Append adds one message with the next sequence number, creating the
// session if absent.
func (s *InMemoryStore) Append(threadID string, msg core.Message) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(threadID)
	appendLocked(sess, msg)
	return sess.Clone(), nil
}

// AppendTurn adds a user message and its paired assistant reply with
// consecutive sequence numbers in one critical section.
func (s *InMemoryStore) AppendTurn(threadID string, user, assistant core.Message) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreateLocked(threadID)
	appendLocked(sess, user)
	appendLocked(sess, assistant)
	return sess.Clone(), nil
}

// Delete removes all state for the thread; deleting an absent thread is a no-op.
func (s *InMemoryStore) Delete(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, threadID)
	return nil
}

// getOrCreateLocked returns the live session for the thread, allocating one
// if needed; caller must already hold the write lock.
func (s *InMemoryStore) getOrCreateLocked(threadID string) *core.Session {
	sess, ok := s.sessions[threadID]
	if !ok {
		sess = core.NewSession(threadID)
		s.sessions[threadID] = sess
	}
	return sess
}

func appendLocked(sess *core.Session, msg core.Message) {
	msg.Sequence = sess.LastSequence() + 1
	sess.History = append(sess.History, msg)
	sess.Version++
	sess.Updated = time.Now()
}
