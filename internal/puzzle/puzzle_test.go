package puzzle

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-bee/internal/config"
)

func TestParseLetters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Letters
		wantErr bool
	}{
		{"plain", "tacoers", "tacoers", false},
		{"spaced upper", "T A C O E R S", "tacoers", false},
		{"too short", "tacoer", "", true},
		{"too long", "tacoersx", "", true},
		{"repeat", "taacoer", "", true},
		{"digit", "taco3rs", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLetters(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidLetters) {
					t.Fatalf("ParseLetters(%q) error = %v, expected ErrInvalidLetters", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLetters(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseLetters(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	l, err := Canonical("tacoers")
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if l != "taceors" {
		t.Errorf("Canonical() = %q, expected %q", l, "taceors")
	}
	if l.Center() != 't' {
		t.Errorf("Center() = %q, expected 't'", l.Center())
	}

	// Shuffled display orders share a key as long as the center stays first
	if Letters("tsroeca").Key() != l.Key() {
		t.Errorf("Key() differs for the same set: %q vs %q", Letters("tsroeca").Key(), l.Key())
	}
	if Letters("acoerst").Key() == l.Key() {
		t.Error("Key() should change when the center changes")
	}
}

func TestDistinctLetters(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"create", 5},
		{"cartoes", 7},
		{"coaster", 7},
		{"toot", 2},
	}
	for _, tc := range tests {
		if got := DistinctLetters(tc.word); got != tc.want {
			t.Errorf("DistinctLetters(%q) = %d, expected %d", tc.word, got, tc.want)
		}
	}
}

func TestNewSolution(t *testing.T) {
	s := NewSolution("tacoers", []string{"Coaster", " coaster", "", "toast", "create"})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	if want := []string{"coaster", "create", "toast"}; !reflect.DeepEqual(s.Words(), want) {
		t.Errorf("Words() = %v, expected %v", s.Words(), want)
	}
	if !s.Has("toast") || s.Has("Toast") {
		t.Error("Has() should match lowercase words only")
	}
	if s.Letters() != "taceors" {
		t.Errorf("Letters() = %q, expected canonical %q", s.Letters(), "taceors")
	}
	if p := s.Pangrams(); !reflect.DeepEqual(p, []string{"coaster"}) {
		t.Errorf("Pangrams() = %v, expected [coaster]", p)
	}
}

func TestNewSetRejectsBadKey(t *testing.T) {
	_, err := NewSet("easy", map[string][]string{"abc": {"cab"}})
	if !errors.Is(err, ErrInvalidLetters) {
		t.Errorf("NewSet with bad key error = %v, expected ErrInvalidLetters", err)
	}
}

func TestSetLookup(t *testing.T) {
	s, err := NewSet("easy", map[string][]string{
		"tacoers": {"coaster", "toast"},
		"aelnpty": {"penalty", "plan"},
	})
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	if want := []string{"aelnpty", "taceors"}; !reflect.DeepEqual(s.Keys(), want) {
		t.Errorf("Keys() = %v, expected %v", s.Keys(), want)
	}
	if !s.Has("taceors") || s.Has("tacoers") {
		t.Error("Has() should only know canonical keys")
	}
	sol, ok := s.Solution("taceors")
	if !ok || sol.Len() != 2 {
		t.Fatalf("Solution(taceors) = %v, %v", sol, ok)
	}
	if _, ok := s.Solution("zzzzzzz"); ok {
		t.Error("Solution() should report missing keys")
	}
}

func TestMatches(t *testing.T) {
	words := []string{"create", "coaster", "cat", "toast", "road", "aces", "toast"}
	got := Matches("tacoers", words)
	want := []string{"coaster", "create", "toast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Matches() = %v, expected %v", got, want)
	}
}

func TestReadWords(t *testing.T) {
	f := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(f, []byte("Coaster\n\ncoaster\ncan't\ntoast\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := os.Open(f)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	words, err := ReadWords(r)
	if err != nil {
		t.Fatalf("ReadWords failed: %v", err)
	}
	if want := []string{"coaster", "toast"}; !reflect.DeepEqual(words, want) {
		t.Errorf("ReadWords() = %v, expected %v", words, want)
	}
}

func TestGenerate(t *testing.T) {
	c := config.NewClassifier(config.GenerateConfig{
		MinWords:        2,
		HardOver:        200,
		MediumOver:      3,
		SparseUnder:     0,
		SparseLongWords: 10,
	})
	words := []string{
		"coaster", "coat", "cost", "rest", "star", "acts",
		"penalty", "plan", "pale",
		"quizbox",
	}

	packs := Generate(words, c)

	medium := packs[config.DifficultyMedium]
	if medium.Len() != 1 || !medium.Has("aceorst") {
		t.Fatalf("medium keys = %v, expected [aceorst]", medium.Keys())
	}
	sol, _ := medium.Solution("aceorst")
	if want := []string{"acts", "coaster", "coat", "star"}; !reflect.DeepEqual(sol.Words(), want) {
		t.Errorf("aceorst solution = %v, expected %v", sol.Words(), want)
	}

	easy := packs[config.DifficultyEasy]
	if easy.Len() != 1 || !easy.Has("aelnpty") {
		t.Errorf("easy keys = %v, expected [aelnpty]", easy.Keys())
	}
	if packs[config.DifficultyHard].Len() != 0 {
		t.Errorf("hard keys = %v, expected none", packs[config.DifficultyHard].Keys())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(jsonPath, []byte(`{"TACOERS": ["coaster", "toast"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json) failed: %v", err)
	}
	if s.Difficulty != "custom" || !s.Has("taceors") {
		t.Errorf("LoadFile(json) = %q %v, expected custom [taceors]", s.Difficulty, s.Keys())
	}

	yamlPath := filepath.Join(dir, "pack.yaml")
	yamlData := "difficulty: hard\npuzzles:\n  ucotnry: [country, count]\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml) failed: %v", err)
	}
	if s.Difficulty != "hard" || !s.Has("ucnorty") {
		t.Errorf("LoadFile(yaml) = %q %v, expected hard [ucnorty]", s.Difficulty, s.Keys())
	}

	if _, err := LoadFile(filepath.Join(dir, "pack.txt")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
	txt := filepath.Join(dir, "words.txt")
	_ = os.WriteFile(txt, []byte("x"), 0o644)
	if _, err := LoadFile(txt); err == nil {
		t.Error("LoadFile should reject unsupported extensions")
	}
}

func TestSaveFile(t *testing.T) {
	s, err := NewSet("medium", map[string][]string{"taceors": {"toast", "coaster"}})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := SaveFile(path, s); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	sol, ok := loaded.Solution("taceors")
	if loaded.Difficulty != "medium" || !ok || sol.Len() != 2 {
		t.Errorf("reloaded pack = %q %v, expected medium with 2 words", loaded.Difficulty, loaded.Keys())
	}
}
