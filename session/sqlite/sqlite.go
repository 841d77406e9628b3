// Package sqlite provides an embedded, durable core.SessionStore backed by
// SQLite. Each thread maps to one row holding the JSON-serialized history and
// a version counter; writes are guarded by a store-level mutex plus a version
// check inside the transaction, so per-thread atomicity holds even across
// multiple Store instances on the same file.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aitalenthub/advisorbot/core"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements core.SessionStore on a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates (or opens) the database at path and runs the schema migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *Store) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		thread_id TEXT PRIMARY KEY,
		history TEXT NOT NULL,
		version INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns a snapshot of the stored session, or ok=false when absent.
func (s *Store) Get(threadID string) (*core.Session, bool, error) {
	sess, err := s.load(threadID)
	if err != nil {
		return nil, false, err
	}
	if sess == nil {
		return nil, false, nil
	}
	return sess, true, nil
}

// Append adds one message with the next sequence number, creating the
// session if absent.
func (s *Store) Append(threadID string, msg core.Message) (*core.Session, error) {
	return s.appendMessages(threadID, msg)
}

// AppendTurn adds a user message and its paired assistant reply in a single
// transaction.
func (s *Store) AppendTurn(threadID string, user, assistant core.Message) (*core.Session, error) {
	return s.appendMessages(threadID, user, assistant)
}

// Delete removes all state for the thread; deleting an absent thread is a no-op.
func (s *Store) Delete(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE thread_id = ?`, threadID); err != nil {
		return &core.SessionStoreError{Op: "delete", ThreadID: threadID, Err: err}
	}
	return nil
}

func (s *Store) appendMessages(threadID string, msgs ...core.Message) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(threadID)
	if err != nil {
		return nil, err
	}
	created := sess == nil
	if created {
		sess = core.NewSession(threadID)
	}
	prevVersion := sess.Version

	for _, msg := range msgs {
		msg.Sequence = sess.LastSequence() + 1
		sess.History = append(sess.History, msg)
		sess.Version++
	}
	sess.Updated = time.Now()

	raw, err := json.Marshal(sess.History)
	if err != nil {
		return nil, &core.SessionStoreError{Op: "append", ThreadID: threadID, Err: err}
	}

	if created {
		_, err = s.db.Exec(
			`INSERT INTO sessions (thread_id, history, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			threadID, string(raw), sess.Version, sess.Created, sess.Updated)
		if err != nil {
			return nil, &core.SessionStoreError{Op: "append", ThreadID: threadID, Err: err}
		}
		return sess, nil
	}

	// The version predicate rejects a write racing against another process
	// holding the same database file.
	res, err := s.db.Exec(
		`UPDATE sessions SET history = ?, version = ?, updated_at = ? WHERE thread_id = ? AND version = ?`,
		string(raw), sess.Version, sess.Updated, threadID, prevVersion)
	if err != nil {
		return nil, &core.SessionStoreError{Op: "append", ThreadID: threadID, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, &core.SessionStoreError{Op: "append", ThreadID: threadID, Err: err}
	}
	if affected == 0 {
		return nil, &core.SessionStoreError{Op: "append", ThreadID: threadID, Err: fmt.Errorf("stale write rejected at version %d", prevVersion)}
	}
	return sess, nil
}

// load reads and deserializes one session row; returns nil when absent.
func (s *Store) load(threadID string) (*core.Session, error) {
	var (
		raw     string
		version int
		created time.Time
		updated time.Time
	)
	row := s.db.QueryRow(`SELECT history, version, created_at, updated_at FROM sessions WHERE thread_id = ?`, threadID)
	if err := row.Scan(&raw, &version, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &core.SessionStoreError{Op: "get", ThreadID: threadID, Err: err}
	}

	var history []core.Message
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, &core.SessionStoreError{Op: "get", ThreadID: threadID, Err: fmt.Errorf("corrupt history: %w", err)}
	}

	return &core.Session{
		ThreadID: threadID,
		History:  history,
		Version:  version,
		Created:  created,
		Updated:  updated,
	}, nil
}
