package session

import (
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks the live sessions by id.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	seed     uint64
	log      *slog.Logger
}

// NewHub creates a hub whose sessions use opts. A non-zero seed makes the
// spawned primitives reproducible; zero derives each session's seed from
// its id.
func NewHub(opts Options, seed uint64, log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		sessions: make(map[string]*Session),
		opts:     opts,
		seed:     seed,
		log:      log,
	}
}

// Create starts a new session.
func (h *Hub) Create() *Session {
	id := uuid.New()
	seed := h.seed
	if seed == 0 {
		seed = binary.BigEndian.Uint64(id[:8])
	}
	s := New(id.String(), h.opts, seed)

	h.mu.Lock()
	h.sessions[s.ID] = s
	n := len(h.sessions)
	h.mu.Unlock()

	h.log.Info("session started", "session", s.ID, "sessions", n)
	return s
}

// Get returns the session with the given id.
func (h *Hub) Get(id string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Remove drops the session with the given id.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	n := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.log.Info("session ended", "session", id, "sessions", n)
	}
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
