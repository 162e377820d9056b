package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

type packRes struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type wordRes struct {
	Word string    `json:"word"`
	Tags []bee.Tag `json:"tags"`
}

type statsRes struct {
	Percent        int      `json:"percent"`
	Longest        int      `json:"longest"`
	MostLetters    int      `json:"mostLetters"`
	AvgLength      *float64 `json:"avgLength,omitempty"`
	WordsPerMinute float64  `json:"wordsPerMinute"`
	ElapsedSecs    int      `json:"elapsedSecs"`
}

// gameRes is the public view of a session.
type gameRes struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Difficulty string    `json:"difficulty"`
	Letters    string    `json:"letters"`
	Center     string    `json:"center"`
	Display    string    `json:"display"`
	Found      int       `json:"found"`
	Total      int       `json:"total"`
	Points     int       `json:"points"`
	MaxPoints  int       `json:"maxPoints"`
	Hints      int       `json:"hints"`
	Cheated    bool      `json:"cheated"`
	Words      []wordRes `json:"words"`
	Stats      statsRes  `json:"stats"`
}

type newGameReq struct {
	Difficulty string `json:"difficulty"`
	Letters    string `json:"letters"`
}

type guessReq struct {
	Word string `json:"word"`
}

type guessRes struct {
	Word    string  `json:"word"`
	Outcome string  `json:"outcome"`
	Message string  `json:"message"`
	Pangram bool    `json:"pangram"`
	Points  int     `json:"points"`
	Game    gameRes `json:"game"`
}

type hintRes struct {
	Prefix string  `json:"prefix"`
	Length int     `json:"length"`
	Game   gameRes `json:"game"`
}

type revealRes struct {
	Revealed []string `json:"revealed"`
	Game     gameRes  `json:"game"`
}

func (s *Server) handlePacks(w http.ResponseWriter, r *http.Request) {
	packs := lo.Map(registry.List(), func(p registry.PackInfo, _ int) packRes {
		return packRes{ID: p.ID, Title: p.Title}
	})
	_ = json.NewEncoder(w).Encode(packs)
}

// handleNewGame loads a pack and starts a puzzle, random unless letters
// are given.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body starts a random puzzle of the default difficulty.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = string(s.cfg.Bee.Difficulty)
	}

	set, err := s.cfg.Load(req.Difficulty)
	if err != nil {
		s.logger.Warn("could not load pack", "difficulty", req.Difficulty, "error", err)
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
		return
	}

	g := bee.New(bee.Options{
		Rand:       rand.New(rand.NewSource(s.nextSeed())),
		Store:      bee.NewMemoryStore(),
		Hints:      s.cfg.Bee.Hints,
		Difficulty: req.Difficulty,
	})
	stats := bee.NewStats()
	g.Subscribe(stats.Handle)
	g.Load(set)

	letters, err := g.SelectLetters(req.Letters)
	if err != nil {
		if errors.Is(err, bee.ErrInvalidPuzzleKey) || errors.Is(err, puzzle.ErrInvalidLetters) {
			writeError(w, http.StatusBadRequest, "invalid_letters")
			return
		}
		// A fresh memory store cannot fail to load, anything else is ours.
		s.logger.Error("could not start puzzle", "error", err)
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}

	sess, evicted := s.sessions.add(g, stats)
	if evicted > 0 {
		s.logger.Debug("dropped idle sessions", "count", evicted)
	}
	s.logger.Info("puzzle started", "game", sess.id, "letters", letters, "difficulty", req.Difficulty)

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s.view(sess))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session) any {
		return s.view(sess)
	})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.withSession(w, r, func(sess *session) any {
		res, err := sess.game.SubmitGuess(req.Word)
		if err != nil {
			s.logger.Warn("could not save guess", "game", sess.id, "error", err)
		}
		if res.Outcome == bee.OutcomeWin {
			s.saveResult(sess)
		}
		return guessRes{
			Word:    res.Word,
			Outcome: res.Outcome.String(),
			Message: res.Message(),
			Pangram: res.Pangram,
			Points:  res.Points,
			Game:    s.view(sess),
		}
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session) any {
		h, err := sess.game.RequestHint()
		if errors.Is(err, bee.ErrNoRemainingWords) {
			return apiError{status: http.StatusConflict, code: "no_remaining_words"}
		}
		if h.Length == 0 {
			return apiError{status: http.StatusInternalServerError, code: "hint_failed"}
		}
		if err != nil {
			s.logger.Warn("could not save hint count", "game", sess.id, "error", err)
		}
		return hintRes{Prefix: h.Prefix, Length: h.Length, Game: s.view(sess)}
	})
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session) any {
		sess.game.Shuffle()
		return s.view(sess)
	})
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session) any {
		recs, err := sess.game.CheatRevealAll()
		if err != nil {
			s.logger.Warn("could not save revealed words", "game", sess.id, "error", err)
		}
		s.saveResult(sess)
		return revealRes{
			Revealed: lo.Map(recs, func(rec bee.GuessRecord, _ int) string { return rec.Word }),
			Game:     s.view(sess),
		}
	})
}

// apiError lets session callbacks reply with an error status.
type apiError struct {
	status int
	code   string
}

// withSession looks up the session from the URL, holds its lock while fn
// runs, and encodes fn's result.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*session) any) {
	sess, ok := s.sessions.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "game_not_found")
		return
	}

	sess.mu.Lock()
	out := fn(sess)
	sess.mu.Unlock()

	if e, ok := out.(apiError); ok {
		writeError(w, e.status, e.code)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// saveResult records a finished session once. Callers hold sess.mu.
func (s *Server) saveResult(sess *session) {
	if sess.saved || sess.game.State() != bee.StateWon {
		return
	}
	sess.saved = true
	if s.cfg.Results == nil {
		return
	}

	g := sess.game
	_, err := s.cfg.Results.SaveResult(storage.Result{
		SessionID:  sess.id,
		Letters:    string(g.Letters()),
		Difficulty: g.Difficulty(),
		Found:      g.Found(),
		Total:      g.Total(),
		Points:     g.Points(),
		MaxPoints:  g.MaxPoints(),
		Hints:      g.Hints(),
		Cheated:    g.Cheated(),
		Duration:   int(time.Since(g.Started()).Seconds()),
	})
	if err != nil {
		s.logger.Warn("could not save result", "game", sess.id, "error", err)
	}
}

// view builds the response body for a session. Callers hold sess.mu.
func (s *Server) view(sess *session) gameRes {
	g := sess.game
	snap := sess.stats.Snapshot(time.Now())

	stats := statsRes{
		Percent:        snap.Percent,
		Longest:        snap.Longest,
		MostLetters:    snap.MostLetters,
		WordsPerMinute: snap.WordsPerMinute,
		ElapsedSecs:    int(snap.Elapsed.Seconds()),
	}
	if snap.HasAverage {
		avg := snap.AvgLength
		stats.AvgLength = &avg
	}

	return gameRes{
		ID:         sess.id,
		State:      g.State().String(),
		Difficulty: g.Difficulty(),
		Letters:    string(g.Letters()),
		Center:     string(g.Center()),
		Display:    string(g.Display()),
		Found:      g.Found(),
		Total:      g.Total(),
		Points:     g.Points(),
		MaxPoints:  g.MaxPoints(),
		Hints:      g.Hints(),
		Cheated:    g.Cheated(),
		Words: lo.Map(g.Records(), func(rec bee.GuessRecord, _ int) wordRes {
			return wordRes{Word: rec.Word, Tags: append([]bee.Tag{}, rec.Tags...)}
		}),
		Stats: stats,
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
