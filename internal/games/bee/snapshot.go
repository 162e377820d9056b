package bee

// Snapshot captures the game state for determinism testing and clients.
type Snapshot struct {
	State      string
	Difficulty string
	Letters    string
	Display    string
	Found      int
	Total      int
	Points     int
	MaxPoints  int
	Hints      int
	Cheated    bool
	Words      []string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	recs := g.Records()
	words := make([]string, len(recs))
	for i, r := range recs {
		words[i] = r.Word
	}

	return Snapshot{
		State:      g.state.String(),
		Difficulty: g.difficulty,
		Letters:    string(g.letters),
		Display:    string(g.display),
		Found:      len(g.found),
		Total:      g.Total(),
		Points:     g.Points(),
		MaxPoints:  g.MaxPoints(),
		Hints:      g.hints,
		Cheated:    g.cheated,
		Words:      words,
	}
}
