package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

// ResultSaver records completed puzzles. *storage.Store and
// *storage.Namespace both implement it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// PlayOptions configures a puzzle screen.
type PlayOptions struct {
	Runtime  core.RuntimeConfig
	Config   config.BeeConfig
	Load     func() (*puzzle.Set, error) // runs in the background on Init
	Guesses  bee.GuessStore              // nil keeps progress in memory
	Results  ResultSaver                 // nil skips saving results
	Logger   *log.Logger                 // nil discards logs
	Embedded bool                        // esc on an empty input returns to the menu
}

// PlayModel is the Bubble Tea model for one puzzle.
type PlayModel struct {
	opts    PlayOptions
	game    *bee.Game
	stats   *bee.Stats
	snap    bee.StatsSnapshot
	screen  *core.Screen
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    PlayKeyMap
	logger  *log.Logger
	width   int

	toast         string
	toastGood     bool
	toastID       int
	tickID        int64
	showStats     bool
	confirmReveal bool
	resultSaved   bool // Whether the result has been saved for this puzzle
	err           error
	quitting      bool
	backToMenu    bool
}

// NewPlayModel creates a puzzle screen. Puzzle data is loaded by Init.
func NewPlayModel(opts PlayOptions) PlayModel {
	// Use time-based seed if not specified
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := bee.New(bee.Options{
		Rand:       rand.New(rand.NewSource(seed)),
		Store:      opts.Guesses,
		Hints:      opts.Config.Hints,
		Difficulty: opts.Runtime.Difficulty,
	})
	stats := bee.NewStats()
	game.Subscribe(stats.Handle)
	game.Subscribe(func(e bee.Event) {
		if won, ok := e.(bee.GameWon); ok {
			logger.Info("puzzle won", "letters", game.Letters(), "cheated", won.Cheated, "hints", game.Hints())
		}
	})

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a word"
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	return PlayModel{
		opts:    opts,
		game:    game,
		stats:   stats,
		screen:  core.NewScreen(hiveW, hiveH),
		input:   ti,
		spinner: sp,
		help:    help.New(),
		keys:    DefaultPlayKeyMap(),
		logger:  logger,
		width:   opts.Runtime.ScreenW,
		tickID:  tickSeq.Add(1),
	}
}

// Init starts loading the puzzle data.
func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPackCmd(m.opts.Load), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case packLoadedMsg:
		return m.handleLoaded(msg.set)

	case packFailedMsg:
		m.err = fmt.Errorf("loading puzzles: %w", msg.err)
		m.logger.Error("could not load puzzles", "error", msg.err)
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.game.State() != bee.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatsTickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		m.snap = m.stats.Snapshot(msg.Time)
		// The refresh ends with the puzzle.
		if m.stats.Won() {
			return m, nil
		}
		return m, statsTickCmd(m.tickID, m.opts.Runtime.StatsEvery)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleLoaded picks the letters once puzzle data is available.
func (m PlayModel) handleLoaded(set *puzzle.Set) (tea.Model, tea.Cmd) {
	m.game.Load(set)
	letters, err := m.game.SelectLetters(m.opts.Runtime.Letters)
	if letters == "" {
		m.err = err
		m.logger.Error("could not start puzzle", "letters", m.opts.Runtime.Letters, "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	if err != nil {
		m.logger.Warn("could not restore progress", "letters", letters, "error", err)
		cmds = append(cmds, m.setToast("Saved progress unavailable", false))
	}

	m.logger.Info("puzzle started",
		"letters", letters,
		"difficulty", m.game.Difficulty(),
		"found", m.game.Found(),
		"total", m.game.Total(),
	)
	m.snap = m.stats.Snapshot(time.Now())

	if m.game.State() == bee.StateWon {
		m.resultSaved = true // finished in an earlier session
		cmds = append(cmds, m.setToast("Puzzle already complete", true))
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, statsTickCmd(m.tickID, m.opts.Runtime.StatsEvery))
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.State() == bee.StateLoading {
		return m, nil
	}

	if !key.Matches(msg, m.keys.Reveal) {
		m.confirmReveal = false
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() != "" {
			m.input.Reset()
			return m, nil
		}
		if m.opts.Embedded {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Shuffle):
		m.game.Shuffle()
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		return m.hint()

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		m.snap = m.stats.Snapshot(time.Now())
		return m, nil

	case key.Matches(msg, m.keys.Reveal):
		return m.reveal()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.input.Value()) == "" {
		return m, nil
	}

	res, err := m.game.SubmitGuess(m.input.Value())
	m.input.Reset()
	if err != nil {
		m.logger.Warn("could not save guess", "word", res.Word, "error", err)
	}

	if res.Outcome.Accepted() {
		m.snap = m.stats.Snapshot(time.Now())
	}
	if res.Outcome == bee.OutcomeWin {
		m.saveResult()
	}
	return m, m.setToast(res.Message(), res.Outcome.Accepted())
}

func (m PlayModel) hint() (tea.Model, tea.Cmd) {
	h, err := m.game.RequestHint()
	if errors.Is(err, bee.ErrNoRemainingWords) {
		return m, m.setToast("No words left to hint", false)
	}
	if h.Length == 0 {
		m.logger.Warn("hint failed", "error", err)
		return m, nil
	}
	if err != nil {
		m.logger.Warn("could not save hint count", "error", err)
	}

	m.input.SetValue(h.Prefix)
	m.input.CursorEnd()
	m.snap = m.stats.Snapshot(time.Now())
	return m, m.setToast(fmt.Sprintf("Hint: %s... (%d letters)", strings.ToUpper(h.Prefix), h.Length), true)
}

func (m PlayModel) reveal() (tea.Model, tea.Cmd) {
	if !m.confirmReveal {
		m.confirmReveal = true
		return m, m.setToast("Press ^x again to reveal every word", false)
	}
	m.confirmReveal = false

	revealed, err := m.game.CheatRevealAll()
	if err != nil {
		m.logger.Warn("could not save revealed words", "error", err)
	}
	m.snap = m.stats.Snapshot(time.Now())
	m.saveResult()
	return m, m.setToast(fmt.Sprintf("Revealed %d words", len(revealed)), false)
}

// saveResult records the finished puzzle once.
func (m *PlayModel) saveResult() {
	if m.resultSaved {
		return
	}
	m.resultSaved = true
	if m.opts.Results == nil {
		return
	}

	_, err := m.opts.Results.SaveResult(storage.Result{
		Letters:    string(m.game.Letters()),
		Difficulty: m.game.Difficulty(),
		Found:      m.game.Found(),
		Total:      m.game.Total(),
		Points:     m.game.Points(),
		MaxPoints:  m.game.MaxPoints(),
		Hints:      m.game.Hints(),
		Cheated:    m.game.Cheated(),
		Duration:   int(time.Since(m.game.Started()).Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

func (m *PlayModel) setToast(text string, good bool) tea.Cmd {
	m.toastID++
	m.toast = text
	m.toastGood = good
	return toastExpireCmd(m.toastID)
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.game.State() == bee.StateLoading {
		return fmt.Sprintf("\n  %s Loading puzzles...\n", m.spinner.View())
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("S P E L L I N G   B E E"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.game.Difficulty()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Found %d/%d   Points %d/%d",
		m.game.Found(), m.game.Total(), m.game.Points(), m.game.MaxPoints())))
	b.WriteString("\n\n")

	m.screen.Clear()
	drawHive(m.screen, m.game.Display())

	left := strings.Join([]string{
		RenderScreen(m.screen),
		"",
		m.input.View(),
		m.renderToast(),
	}, "\n")

	right := renderWords(m.game.Records())
	if m.showStats {
		right = renderStats(m.snap)
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n\n")

	if m.game.State() == bee.StateWon {
		banner := bee.OutcomeWin.Message()
		if m.game.Cheated() {
			banner = "Solution revealed"
		}
		b.WriteString(winStyle.Render(banner))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m PlayModel) renderToast() string {
	if m.toast == "" {
		return ""
	}
	if m.toastGood {
		return goodStyle.Render(m.toast)
	}
	return badStyle.Render(m.toast)
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the error that ended the session, if any.
func (m PlayModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a single puzzle.
func Run(opts PlayOptions) error {
	model := NewPlayModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(PlayModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
