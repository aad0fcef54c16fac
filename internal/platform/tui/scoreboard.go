package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const (
	resultsLimit = 50
	// Rows used by everything except the table body: title, variant line,
	// summary, table header, replay line and help.
	scoreboardChrome = 9
)

var resultColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Lines", Width: 6},
	{Title: "Pieces", Width: 7},
	{Title: "Seed", Width: 20},
	{Title: "Played", Width: 12},
}

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "newer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "older"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists finished games per variant. The highlighted row
// is shown as the command that replays it.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	stats    map[string]*storage.GameStats
	results  []storage.ScoreEntry

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width  int
	height int
	back   bool
	done   bool
}

// NewScoreboardModel creates the results screen. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		stats:    map[string]*storage.GameStats{},
		table:    newResultsTable(height),
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.help.Width = width

	if store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			m.stats = all
		}
	}
	m.selectVariant(0)
	return m
}

func newResultsTable(height int) table.Model {
	t := table.New(
		table.WithColumns(resultColumns),
		table.WithFocused(true),
		table.WithHeight(max(height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	t.SetStyles(s)
	return t
}

// selectVariant switches to the i-th variant and reloads its results.
func (m *ScoreboardModel) selectVariant(i int) {
	m.results = nil
	if len(m.variants) == 0 {
		m.table.SetRows(nil)
		return
	}

	m.current = (i%len(m.variants) + len(m.variants)) % len(m.variants)
	if m.store != nil {
		if results, err := m.store.TopScores(m.variantID(), resultsLimit); err == nil {
			m.results = results
		}
	}

	rows := make([]table.Row, len(m.results))
	for n, r := range m.results {
		rows[n] = table.Row{
			fmt.Sprintf("%d", n+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Pieces),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// Selected returns the highlighted result.
func (m ScoreboardModel) Selected() (storage.ScoreEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return storage.ScoreEntry{}, false
	}
	return m.results[i], true
}

// ReplayCommand is the command line that replays a recorded game.
func ReplayCommand(r storage.ScoreEntry) string {
	return fmt.Sprintf("blockfall play %s --seed %d", r.GameID, r.Seed)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectVariant(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectVariant(m.current - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-scoreboardChrome, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.done || m.back {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(title.Render(centerText("FINISHED GAMES", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.variantLine(), m.width))
	b.WriteString("\n")
	b.WriteString(dim.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(dim.Italic(true).Render(centerText("No finished games with cleared rows yet.", m.width)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if r, ok := m.Selected(); ok {
			fmt.Fprintf(&b, "Replay: %s", ReplayCommand(r))
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// variantLine lists the variants with the current one highlighted.
func (m ScoreboardModel) variantLine() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = active.Render("[" + v.Title + "]")
		} else {
			parts[i] = " " + v.Title + " "
		}
	}
	return strings.Join(parts, "  ")
}

// summary describes all recorded games of the current variant.
func (m ScoreboardModel) summary() string {
	s, ok := m.stats[m.variantID()]
	if !ok || s.GamesCount == 0 {
		return "no games recorded"
	}
	return fmt.Sprintf("%d games · best %d lines · %d pieces placed · last %s",
		s.GamesCount, s.HighScore, s.TotalPieces, s.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// RunScoreboard runs the results screen and reports whether the user wants
// to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
