package bee

import "sync"

// GuessStore persists found words per puzzle so a game can be resumed.
// Keys are canonical letter strings.
type GuessStore interface {
	// Load returns the records saved for key in insertion order.
	// A key with no saved state yields an empty slice and no error.
	Load(key string) ([]GuessRecord, error)

	// Append saves one more record for key.
	Append(key string, rec GuessRecord) error
}

// HintStore is implemented by guess stores that also keep how many hints a
// puzzle has used. Without it the count is rebuilt from tagged records.
type HintStore interface {
	LoadHints(key string) (int, error)
	SaveHints(key string, n int) error
}

// MemoryStore is an in-process GuessStore. State is lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]GuessRecord
	hints   map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]GuessRecord),
		hints:   make(map[string]int),
	}
}

// Load implements GuessStore.
func (m *MemoryStore) Load(key string) ([]GuessRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := m.records[key]
	out := make([]GuessRecord, len(recs))
	copy(out, recs)
	return out, nil
}

// Append implements GuessStore.
func (m *MemoryStore) Append(key string, rec GuessRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.Tags = append([]Tag(nil), rec.Tags...)
	m.records[key] = append(m.records[key], rec)
	return nil
}

// LoadHints implements HintStore.
func (m *MemoryStore) LoadHints(key string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hints[key], nil
}

// SaveHints implements HintStore.
func (m *MemoryStore) SaveHints(key string, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hints[key] = n
	return nil
}

var (
	_ GuessStore = (*MemoryStore)(nil)
	_ HintStore  = (*MemoryStore)(nil)
)
