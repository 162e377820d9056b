package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

func TestRegisterAndLoad(t *testing.T) {
	Register("test-b", "Test B", 2, func() (*puzzle.Set, error) {
		return puzzle.NewSet("test-b", map[string][]string{"tacoers": {"toast"}})
	})
	Register("test-a", "Test A", 2, func() (*puzzle.Set, error) {
		return nil, errors.New("boom")
	})

	if !Exists("test-b") || Exists("test-missing") {
		t.Error("Exists() returned wrong result")
	}

	var ids []string
	for _, info := range List() {
		if info.Order == 2 {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" || ids[1] != "test-b" {
		t.Errorf("List() order = %v, expected [test-a test-b]", ids)
	}

	s, err := Load("test-b")
	if err != nil {
		t.Fatalf("Load(test-b) failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Load(test-b).Len() = %d, expected 1", s.Len())
	}

	if _, err := Load("test-a"); err == nil {
		t.Error("Load should return factory errors")
	}
	if _, err := Load("test-missing"); err == nil {
		t.Error("Load should fail for unknown packs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", 9, func() (*puzzle.Set, error) { return nil, nil })

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate id")
		}
	}()
	Register("test-dup", "Dup", 9, func() (*puzzle.Set, error) { return nil, nil })
}
