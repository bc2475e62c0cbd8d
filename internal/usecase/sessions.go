package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type session struct {
	editor     *Editor
	lastAccess time.Time
}

// SessionStore keeps editors in memory keyed by session id. Nothing survives
// a restart.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*session
	newEditor func() *Editor
	now       func() time.Time
}

func NewSessionStore(newEditor func() *Editor) *SessionStore {
	return &SessionStore{
		sessions:  map[uuid.UUID]*session{},
		newEditor: newEditor,
		now:       time.Now,
	}
}

func (s *SessionStore) Create() (uuid.UUID, *Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	for s.sessions[id] != nil {
		id = uuid.New()
	}
	ed := s.newEditor()
	s.sessions[id] = &session{editor: ed, lastAccess: s.now()}
	return id, ed
}

// Get returns the editor and refreshes its last access time.
func (s *SessionStore) Get(id uuid.UUID) (*Editor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastAccess = s.now()
	return sess.editor, nil
}

// Delete is idempotent.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many.
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
