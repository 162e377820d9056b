package httpserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
)

const (
	defaultSessionTTL  = time.Hour
	defaultMaxSessions = 10000
)

// session is one puzzle in progress. The mutex serializes requests against
// the same game.
type session struct {
	mu    sync.Mutex
	id    string
	game  *bee.Game
	stats *bee.Stats
	saved bool

	lastSeen time.Time // guarded by sessionStore.mu
}

// sessionStore is a thread-safe map of sessions keyed by ID. Sessions idle
// for longer than ttl are dropped, and the table never holds more than max.
type sessionStore struct {
	mu  sync.Mutex
	m   map[string]*session
	ttl time.Duration
	max int
	now func() time.Time
}

func newSessionStore(ttl time.Duration, max int) *sessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if max <= 0 {
		max = defaultMaxSessions
	}
	return &sessionStore{
		m:   make(map[string]*session),
		ttl: ttl,
		max: max,
		now: time.Now,
	}
}

// add registers a game under a fresh ID. It returns the new session and
// how many old sessions were evicted to make room.
func (s *sessionStore) add(g *bee.Game, stats *bee.Stats) (*session, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := s.pruneLocked(now)
	for len(s.m) >= s.max {
		s.evictOldestLocked()
		evicted++
	}

	sess := &session{id: uuid.NewString(), game: g, stats: stats, lastSeen: now}
	s.m[sess.id] = sess
	return sess, evicted
}

// get returns a live session and marks it as used.
func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.m, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *sessionStore) pruneLocked(now time.Time) int {
	n := 0
	for id, sess := range s.m {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.m, id)
			n++
		}
	}
	return n
}

func (s *sessionStore) evictOldestLocked() {
	var oldest *session
	for _, sess := range s.m {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.m, oldest.id)
	}
}
