package bee

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	recs, err := s.Load("taceors")
	if err != nil || len(recs) != 0 {
		t.Fatalf("Load on empty store = %v, %v; expected empty", recs, err)
	}

	tags := []Tag{TagPangram}
	_ = s.Append("taceors", GuessRecord{Word: "coaster", Tags: tags})
	_ = s.Append("taceors", GuessRecord{Word: "create"})
	_ = s.Append("aelnpty", GuessRecord{Word: "penalty"})
	tags[0] = TagCheatRevealed

	recs, _ = s.Load("taceors")
	if len(recs) != 2 || recs[0].Word != "coaster" || recs[1].Word != "create" {
		t.Fatalf("Load() = %+v, expected coaster then create", recs)
	}
	if !recs[0].HasTag(TagPangram) {
		t.Error("stored tags should not alias the caller's slice")
	}

	recs[0].Word = "mutated"
	again, _ := s.Load("taceors")
	if again[0].Word != "coaster" {
		t.Error("Load should return a copy")
	}
}

func TestMemoryStoreHints(t *testing.T) {
	s := NewMemoryStore()

	if n, err := s.LoadHints("taceors"); err != nil || n != 0 {
		t.Fatalf("LoadHints on empty store = %d, %v; expected 0", n, err)
	}
	_ = s.SaveHints("taceors", 4)
	if n, _ := s.LoadHints("taceors"); n != 4 {
		t.Errorf("LoadHints() = %d, expected 4", n)
	}
	if n, _ := s.LoadHints("aelnpty"); n != 0 {
		t.Errorf("LoadHints() for another puzzle = %d, expected 0", n)
	}
}
