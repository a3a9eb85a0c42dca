package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"shelf-assist-be/pkg/store"
)

type SessionRepository struct {
	cache *cache.Cache

	mu        sync.RWMutex
	currentID string
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Save stores the session and atomically promotes it to the current one.
// Candidates from the superseded session become unreachable through Current
// even if a concurrent audio upload is still holding a snapshot of them.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)

	r.mu.Lock()
	r.currentID = session.ID
	r.mu.Unlock()
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Current returns the session of the most recent image upload, if any.
func (r *SessionRepository) Current() (*store.Session, bool) {
	r.mu.RLock()
	id := r.currentID
	r.mu.RUnlock()

	if id == "" {
		return nil, false
	}
	return r.Get(id)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)

	r.mu.Lock()
	if r.currentID == sessionID {
		r.currentID = ""
	}
	r.mu.Unlock()
}
