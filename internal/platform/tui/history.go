package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/artgrid/internal/export"
	"github.com/vovakirdan/artgrid/internal/seed"
	"github.com/vovakirdan/artgrid/internal/storage"
)

// History layout constants
const (
	maxRenders    = 200 // Max renders to load
	minTableWidth = 60
)

// historyKinds are the filter tabs, in display order. The empty kind shows
// everything.
var historyKinds = []string{
	"",
	string(export.KindGrid),
	string(export.KindCard),
	string(export.KindTile),
	string(export.KindAnimation),
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextKind key.Binding
	PrevKind key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextKind, k.PrevKind, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextKind, k.PrevKind, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next kind"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev kind"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past exports.
type HistoryModel struct {
	all      []storage.Render
	visible  []storage.Render
	kind     int // index into historyKinds
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel loads recent renders from store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		m.all, m.loadErr = store.RecentRenders(maxRenders)
	}
	m.table = m.createTable()
	m.applyFilter()
	return m
}

// createTable creates a new table with columns sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Kind", Width: 9},
		{Title: "Seed", Width: 8},
		{Title: "Palette", Width: 8},
		{Title: "Cx", Width: 3},
		{Title: "Grid", Width: 4},
		{Title: "File", Width: 30},
	}

	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	if avail := max(m.width, minTableWidth) - 6 - fixed; avail > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = avail
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// applyFilter narrows the loaded renders to the selected kind.
func (m *HistoryModel) applyFilter() {
	kind := historyKinds[m.kind]
	m.visible = nil
	for _, r := range m.all {
		if kind == "" || r.Kind == kind {
			m.visible = append(m.visible, r)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the visible renders.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats one render for display.
func HistoryRow(r storage.Render) table.Row {
	s := "-"
	if r.Seed != 0 {
		s = "#" + seed.Hash(r.Seed)
	}
	designer := ""
	if r.Designer {
		designer = "*"
	}
	return table.Row{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		r.Kind,
		s,
		r.Palette,
		fmt.Sprintf("%d%s", r.Complexity, designer),
		fmt.Sprintf("%dx%d", r.GridSize, r.GridSize),
		filepath.Base(r.Path),
	}
}

// Visible returns the renders shown under the current filter.
func (m HistoryModel) Visible() []storage.Render {
	return m.visible
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextKind):
			m.kind = (m.kind + 1) % len(historyKinds)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevKind):
			m.kind--
			if m.kind < 0 {
				m.kind = len(historyKinds) - 1
			}
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("EXPORT HISTORY"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the kind filter tabs.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(historyKinds))
	for i, k := range historyKinds {
		name := k
		if name == "" {
			name = "all"
		}
		if i == m.kind {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Could not load history: %v", m.loadErr))
	}
	if len(m.visible) == 0 {
		return emptyStyle.Render("Nothing exported yet.\nRun `artgrid render` or press ctrl+s in the live viewer.")
	}
	return m.table.View()
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
