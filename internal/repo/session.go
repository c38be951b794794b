package repo

import (
	"errors"
	"sync"

	"github.com/Samreen555/huffman"
)

// ErrNotFound is returned when no session exists for an id.
var ErrNotFound = errors.New("session not found")

// Session is one stored codec session.
type Session struct {
	ID    string
	Codec *huffman.Codec
}

// SessionRepo stores codec sessions.
type SessionRepo interface {
	Save(s *Session) error
	FindByID(id string) (*Session, error)
}

// NewSessionRepoInMemory returns a process-local SessionRepo.  Sessions are
// deliberately not persisted; the codec has no on-disk format and sessions
// die with the process.
func NewSessionRepoInMemory() SessionRepo {
	return &memRepo{sessions: make(map[string]*Session)}
}

type memRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func (r *memRepo) Save(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *memRepo) FindByID(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}
