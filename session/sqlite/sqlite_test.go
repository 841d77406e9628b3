package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/aitalenthub/advisorbot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*Store)(nil)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_GetAbsent(t *testing.T) {
	store := openTestStore(t)

	sess, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestStore_AppendTurnSequencesAndVersions(t *testing.T) {
	store := openTestStore(t)

	sess, err := store.AppendTurn("u1", core.NewUserMessage("q1"), core.NewAssistantMessage("a1"))
	require.NoError(t, err)
	require.Len(t, sess.History, 2)
	assert.Equal(t, 1, sess.History[0].Sequence)
	assert.Equal(t, 2, sess.History[1].Sequence)
	assert.Equal(t, 2, sess.Version)

	sess, err = store.AppendTurn("u1", core.NewUserMessage("q2"), core.NewAssistantMessage("a2"))
	require.NoError(t, err)
	require.Len(t, sess.History, 4)
	assert.Equal(t, 4, sess.Version)
	for i, msg := range sess.History {
		assert.Equal(t, i+1, msg.Sequence)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.AppendTurn("u1", core.NewUserMessage("q"), core.NewAssistantMessage("a"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	sess, ok, err := reopened.Get("u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, sess.History, 2)
	assert.Equal(t, 2, sess.Version)
	assert.Equal(t, "a", sess.History[1].Content)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Append("u1", core.NewUserMessage("q"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("u1"))
	_, ok, err := store.Get("u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete("u1"))
}

func TestStore_CorruptHistorySurfacesStoreError(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Append("u1", core.NewUserMessage("q"))
	require.NoError(t, err)

	_, err = store.db.Exec(`UPDATE sessions SET history = 'not-json' WHERE thread_id = 'u1'`)
	require.NoError(t, err)

	_, _, err = store.Get("u1")
	var sse *core.SessionStoreError
	require.ErrorAs(t, err, &sse)
	assert.Equal(t, "get", sse.Op)
	assert.Equal(t, "u1", sse.ThreadID)
}
