package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newClockedStore(ttl time.Duration, max int) (*sessionStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := newSessionStore(ttl, max)
	s.now = clock.now
	return s, clock
}

func TestSessionStoreExpiresIdle(t *testing.T) {
	s, clock := newClockedStore(time.Minute, 10)

	idle, _ := s.add(bee.New(bee.Options{}), bee.NewStats())
	busy, _ := s.add(bee.New(bee.Options{}), bee.NewStats())

	clock.t = clock.t.Add(40 * time.Second)
	if _, ok := s.get(busy.id); !ok {
		t.Fatal("get() should find a session used within the ttl")
	}

	clock.t = clock.t.Add(40 * time.Second)
	if _, ok := s.get(idle.id); ok {
		t.Error("get() should drop a session idle past the ttl")
	}
	if _, ok := s.get(busy.id); !ok {
		t.Error("get() should keep a session refreshed by the last request")
	}

	clock.t = clock.t.Add(2 * time.Minute)
	_, evicted := s.add(bee.New(bee.Options{}), bee.NewStats())
	if evicted != 1 || s.len() != 1 {
		t.Errorf("add() evicted %d, len() = %d, expected 1 and 1", evicted, s.len())
	}
}

func TestSessionStoreCap(t *testing.T) {
	s, clock := newClockedStore(time.Hour, 3)

	var ids []string
	for range 3 {
		sess, _ := s.add(bee.New(bee.Options{}), bee.NewStats())
		ids = append(ids, sess.id)
		clock.t = clock.t.Add(time.Second)
	}
	// Touch the first so the second becomes the oldest
	s.get(ids[0])

	_, evicted := s.add(bee.New(bee.Options{}), bee.NewStats())
	if evicted != 1 || s.len() != 3 {
		t.Fatalf("add() evicted %d, len() = %d, expected 1 and 3", evicted, s.len())
	}
	if _, ok := s.get(ids[1]); ok {
		t.Error("least recently used session should be evicted")
	}
	if _, ok := s.get(ids[0]); !ok {
		t.Error("recently used session should survive")
	}
}

func TestExpiredGameNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	clock := &fakeClock{t: time.Now()}
	srv.sessions.now = clock.now

	g := newGame(t, srv)
	clock.t = clock.t.Add(defaultSessionTTL + time.Minute)

	rec := do(t, srv, http.MethodGet, "/api/games/"+g.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET expired game = %d, expected 404", rec.Code)
	}
}
