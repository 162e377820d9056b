package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

const (
	maxResults    = 100 // Max results to load per difficulty
	inProgressTab = "In progress"
)

// ProgressKeyMap defines the key bindings for the progress screen.
type ProgressKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel shows finished puzzles per difficulty and the puzzles the
// player has started but not finished.
type ProgressModel struct {
	tabs      []string // difficulties followed by inProgressTab
	tab       int
	store     *storage.Store
	player    string
	table     table.Model
	rows      []table.Row
	loadErr   error
	help      help.Model
	keys      ProgressKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProgressModel creates a progress screen. A nil store shows empty tables.
// Player scopes the in-progress list; empty means local play.
func NewProgressModel(store *storage.Store, player, difficulty string, width, height int) ProgressModel {
	var tabs []string
	for _, p := range registry.List() {
		tabs = append(tabs, p.ID)
	}
	tabs = append(tabs, inProgressTab)

	m := ProgressModel{
		tabs:   tabs,
		store:  store,
		player: player,
		help:   help.New(),
		keys:   DefaultProgressKeyMap(),
		width:  width,
		height: height,
	}
	for i, t := range tabs {
		if t == difficulty {
			m.tab = i
		}
	}

	m.load()
	return m
}

func (m ProgressModel) current() string {
	return m.tabs[m.tab]
}

// load refreshes rows and rebuilds the table for the current tab.
func (m *ProgressModel) load() {
	m.rows, m.loadErr = nil, nil
	if m.store != nil {
		if m.current() == inProgressTab {
			m.rows, m.loadErr = m.progressRows()
		} else {
			m.rows, m.loadErr = m.resultRows(m.current())
		}
	}
	m.table = m.createTable()
}

func (m ProgressModel) resultRows(difficulty string) ([]table.Row, error) {
	results, err := m.store.TopResults(difficulty, maxResults)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		points := fmt.Sprintf("%d/%d", r.Points, r.MaxPoints)
		if r.Cheated {
			points += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strings.ToUpper(r.Letters),
			points,
			fmt.Sprintf("%d/%d", r.Found, r.Total),
			fmt.Sprintf("%d", r.Hints),
			(time.Duration(r.Duration) * time.Second).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

func (m ProgressModel) progressRows() ([]table.Row, error) {
	progress, err := m.store.Namespace(m.player).Progress()
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(progress))
	for i, p := range progress {
		rows[i] = table.Row{
			strings.ToUpper(p.Letters),
			fmt.Sprintf("%d", p.Found),
			p.LastPlayed.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

func (m ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Letters", Width: 9},
		{Title: "Points", Width: 9},
		{Title: "Words", Width: 7},
		{Title: "Hints", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}
	if m.current() == inProgressTab {
		columns = []table.Column{
			{Title: "Letters", Width: 9},
			{Title: "Words", Width: 7},
			{Title: "Last played", Width: 13},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)), // Leave room for header, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("PROGRESS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ProgressModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = dimStyle.Render(" " + t + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m ProgressModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return badStyle.Render(fmt.Sprintf("Could not load progress: %v", m.loadErr))
	case len(m.rows) == 0 && m.current() == inProgressTab:
		return emptyStyle.Render("No unfinished puzzles.")
	case len(m.rows) == 0:
		return emptyStyle.Render("No finished puzzles yet.\nComplete one to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress runs the progress screen for local play.
// Returns true if user wants to go back to menu, false if quitting.
func RunProgress(store *storage.Store, difficulty string, width, height int) (goBack bool, err error) {
	model := NewProgressModel(store, "", difficulty, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
