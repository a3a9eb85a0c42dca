package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf-assist-be/pkg/store"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Current()
	assert.False(t, found, "no current session before any save")

	first := &store.Session{ID: "s1", Candidates: []string{"a.jpg", "b.jpg"}, CreatedAt: time.Now()}
	repo.Save(first)

	got, found := repo.Get("s1")
	require.True(t, found)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Candidates)

	cur, found := repo.Current()
	require.True(t, found)
	assert.Equal(t, "s1", cur.ID)

	// A newer session supersedes the current pointer.
	second := &store.Session{ID: "s2", CreatedAt: time.Now()}
	repo.Save(second)

	cur, found = repo.Current()
	require.True(t, found)
	assert.Equal(t, "s2", cur.ID)

	// Deleting the current session clears the pointer.
	repo.Delete("s2")
	_, found = repo.Current()
	assert.False(t, found)

	// The older session is still addressable by ID.
	_, found = repo.Get("s1")
	assert.True(t, found)
}
