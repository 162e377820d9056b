package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestGuessesAppendAndLoad(t *testing.T) {
	store := openTestStore(t)

	recs, err := store.Load("taceors")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Expected no records, got %d", len(recs))
	}

	saves := []bee.GuessRecord{
		{Word: "create"},
		{Word: "coaster", Tags: []bee.Tag{bee.TagPangram, bee.TagHintRevealed}},
		{Word: "create"}, // duplicate is ignored
		{Word: "toast"},
	}
	for _, r := range saves {
		if err := store.Append("taceors", r); err != nil {
			t.Fatalf("Append(%s) failed: %v", r.Word, err)
		}
	}
	_ = store.Append("aelnpty", bee.GuessRecord{Word: "penalty"})

	recs, err = store.Load("taceors")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(recs))
	}
	// Insertion order is kept
	want := []string{"create", "coaster", "toast"}
	for i, w := range want {
		if recs[i].Word != w {
			t.Errorf("recs[%d] = %s, expected %s", i, recs[i].Word, w)
		}
	}
	if !recs[1].HasTag(bee.TagPangram) || !recs[1].HasTag(bee.TagHintRevealed) || len(recs[1].Tags) != 2 {
		t.Errorf("coaster tags = %v, expected pangram and hint-revealed", recs[1].Tags)
	}
	if len(recs[0].Tags) != 0 {
		t.Errorf("create tags = %v, expected none", recs[0].Tags)
	}
}

func TestClearGuesses(t *testing.T) {
	store := openTestStore(t)
	_ = store.SaveHints("taceors", 3)

	_ = store.Append("taceors", bee.GuessRecord{Word: "create"})
	_ = store.Append("taceors", bee.GuessRecord{Word: "toast"})
	_ = store.Append("aelnpty", bee.GuessRecord{Word: "penalty"})

	n, err := store.ClearGuesses("taceors")
	if err != nil {
		t.Fatalf("ClearGuesses() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearGuesses() = %d, expected 2", n)
	}

	recs, _ := store.Load("taceors")
	if len(recs) != 0 {
		t.Errorf("Expected no records after clear, got %d", len(recs))
	}
	recs, _ = store.Load("aelnpty")
	if len(recs) != 1 {
		t.Errorf("Other puzzles should be untouched, got %d records", len(recs))
	}
	if n, _ := store.LoadHints("taceors"); n != 0 {
		t.Errorf("LoadHints() = %d after clear, expected 0", n)
	}
}

func TestNamespacePlayerNames(t *testing.T) {
	store := openTestStore(t)

	players := []string{"a", "a:b", "zoë", "ёжик"}
	for i, p := range players {
		ns := store.Namespace(p)
		for _, w := range []string{"create", "toast", "coaster", "taco"}[:i+1] {
			if err := ns.Append("taceors", bee.GuessRecord{Word: w}); err != nil {
				t.Fatalf("Append() for %q failed: %v", p, err)
			}
		}
	}

	for i, p := range players {
		t.Run(p, func(t *testing.T) {
			ns := store.Namespace(p)
			recs, err := ns.Load("taceors")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(recs) != i+1 {
				t.Errorf("Load() = %d records, expected %d", len(recs), i+1)
			}

			progress, err := ns.Progress()
			if err != nil {
				t.Fatalf("Progress() failed: %v", err)
			}
			if len(progress) != 1 || progress[0].Letters != "taceors" || progress[0].Found != i+1 {
				t.Errorf("Progress() = %+v, expected taceors with %d found", progress, i+1)
			}
		})
	}
}

func TestHints(t *testing.T) {
	store := openTestStore(t)
	alice := store.Namespace("alice")

	if n, err := store.LoadHints("taceors"); err != nil || n != 0 {
		t.Fatalf("LoadHints() = %d, %v, expected 0 for an unknown puzzle", n, err)
	}

	_ = store.SaveHints("taceors", 2)
	_ = store.SaveHints("taceors", 5)
	_ = alice.SaveHints("taceors", 1)

	if n, _ := store.LoadHints("taceors"); n != 5 {
		t.Errorf("LoadHints() = %d, expected 5", n)
	}
	if n, _ := alice.LoadHints("taceors"); n != 1 {
		t.Errorf("alice LoadHints() = %d, expected 1", n)
	}
}

func TestLegacyGuessesMigrated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE guesses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			letters TEXT NOT NULL,
			word TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(letters, word)
		);
		CREATE INDEX idx_guesses_letters ON guesses(letters);
		INSERT INTO guesses (letters, word, tags) VALUES
			('taceors', 'create', ''),
			('alice:taceors', 'coaster', 'pangram'),
			('a:b:taceors', 'toast', '');
	`)
	db.Close()
	if err != nil {
		t.Fatalf("creating legacy schema failed: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tests := []struct {
		player string
		word   string
	}{
		{"", "create"},
		{"alice", "coaster"},
		{"a:b", "toast"},
	}
	for _, tc := range tests {
		recs, err := store.Namespace(tc.player).Load("taceors")
		if err != nil {
			t.Fatalf("Load() for %q failed: %v", tc.player, err)
		}
		if len(recs) != 1 || recs[0].Word != tc.word {
			t.Errorf("Load() for %q = %+v, expected [%s]", tc.player, recs, tc.word)
		}
	}
}

func TestNamespaceIsolation(t *testing.T) {
	store := openTestStore(t)
	alice := store.Namespace("alice")
	bob := store.Namespace("bob")

	_ = alice.Append("taceors", bee.GuessRecord{Word: "create"})
	_ = bob.Append("taceors", bee.GuessRecord{Word: "toast"})
	_ = bob.Append("aelnpty", bee.GuessRecord{Word: "penalty"})
	_ = store.Append("taceors", bee.GuessRecord{Word: "coaster"})

	recs, _ := alice.Load("taceors")
	if len(recs) != 1 || recs[0].Word != "create" {
		t.Errorf("alice records = %+v, expected [create]", recs)
	}

	progress, err := bob.Progress()
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("bob progress = %+v, expected 2 puzzles", progress)
	}
	// Most recent first
	if progress[0].Letters != "aelnpty" || progress[1].Letters != "taceors" {
		t.Errorf("bob progress order = %s, %s", progress[0].Letters, progress[1].Letters)
	}

	local, err := store.Progress("")
	if err != nil {
		t.Fatalf("Progress(\"\") failed: %v", err)
	}
	if len(local) != 1 || local[0].Letters != "taceors" || local[0].Found != 1 {
		t.Errorf("local progress = %+v, expected only the local puzzle", local)
	}
}

func TestResults(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	best, err := store.BestPoints("easy")
	if err != nil {
		t.Fatalf("BestPoints() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for empty difficulty, got %d", best)
	}

	results := []Result{
		{Letters: "taceors", Difficulty: "easy", Found: 74, Total: 74, Points: 150, MaxPoints: 150, Duration: 600},
		{Letters: "aelnpty", Difficulty: "easy", Found: 39, Total: 39, Points: 90, MaxPoints: 90, Hints: 2, Duration: 300},
		{Letters: "oadegnr", Difficulty: "easy", Found: 36, Total: 36, Points: 200, MaxPoints: 200, Hints: 30, Cheated: true},
		{Letters: "ucnorty", Difficulty: "hard", Found: 19, Total: 19, Points: 60, MaxPoints: 60},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults("easy", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 easy results, got %d", len(top))
	}
	// Honest results first, by points
	if top[0].Points != 150 || top[1].Points != 90 || !top[2].Cheated {
		t.Errorf("Results not in expected order: %+v", top)
	}
	if top[0].SessionID == "" || top[0].SessionID == top[1].SessionID {
		t.Error("Each result should get its own session id")
	}

	best, _ = store.BestPoints("easy")
	if best != 150 {
		t.Errorf("BestPoints() = %d, expected 150 (cheated results excluded)", best)
	}

	stats, err := store.AllDifficultyStats()
	if err != nil {
		t.Fatalf("AllDifficultyStats() failed: %v", err)
	}
	easy := stats["easy"]
	if easy == nil || easy.Completed != 3 || easy.Cheated != 1 || easy.BestPoints != 150 {
		t.Errorf("easy stats = %+v", easy)
	}
	if easy != nil && easy.AvgHints != 32.0/3.0 {
		t.Errorf("AvgHints = %v, expected %v", easy.AvgHints, 32.0/3.0)
	}
	if stats["hard"] == nil || stats["hard"].Completed != 1 {
		t.Errorf("hard stats = %+v", stats["hard"])
	}
}

func TestNamespaceSaveResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Namespace("alice").SaveResult(Result{Letters: "taceors", Difficulty: "easy", Points: 10}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	top, _ := store.TopResults("easy", 1)
	if len(top) != 1 || top[0].Player != "alice" {
		t.Errorf("TopResults() = %+v, expected alice's result", top)
	}
}

func TestGameResumesFromStore(t *testing.T) {
	store := openTestStore(t)
	set, err := puzzle.NewSet("easy", map[string][]string{
		"tacoers": {"create", "coaster", "toast"},
	})
	if err != nil {
		t.Fatal(err)
	}

	g1 := bee.New(bee.Options{Store: store})
	g1.Load(set)
	if _, err := g1.SelectLetters("tacoers"); err != nil {
		t.Fatalf("SelectLetters() failed: %v", err)
	}
	if _, err := g1.SubmitGuess("coaster"); err != nil {
		t.Fatalf("SubmitGuess() failed: %v", err)
	}

	g2 := bee.New(bee.Options{Store: store})
	g2.Load(set)
	if _, err := g2.SelectLetters("tacoers"); err != nil {
		t.Fatalf("SelectLetters() failed: %v", err)
	}
	recs := g2.Records()
	if len(recs) != 1 || recs[0].Word != "coaster" || !recs[0].HasTag(bee.TagPangram) {
		t.Errorf("restored records = %+v, expected tagged coaster", recs)
	}
}

func TestGameResumesHintCount(t *testing.T) {
	store := openTestStore(t)
	set, err := puzzle.NewSet("easy", map[string][]string{
		"tacoers": {"create", "coaster", "toast"},
	})
	if err != nil {
		t.Fatal(err)
	}
	ns := store.Namespace("alice")

	g1 := bee.New(bee.Options{Store: ns})
	g1.Load(set)
	if _, err := g1.SelectLetters("tacoers"); err != nil {
		t.Fatalf("SelectLetters() failed: %v", err)
	}
	for range 3 {
		if _, err := g1.RequestHint(); err != nil {
			t.Fatalf("RequestHint() failed: %v", err)
		}
	}

	g2 := bee.New(bee.Options{Store: ns})
	g2.Load(set)
	if _, err := g2.SelectLetters("tacoers"); err != nil {
		t.Fatalf("SelectLetters() failed: %v", err)
	}
	if g2.Hints() != 3 {
		t.Errorf("Hints() = %d after resume, expected 3", g2.Hints())
	}
}
