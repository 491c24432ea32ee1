package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type manageKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func newManageKeyMap() manageKeyMap {
	return manageKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k manageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Reload, k.Quit}
}

func (k manageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Confirm, k.Cancel}}
}

// confirmKeys is shown while a delete is pending.
type confirmKeys struct{ k manageKeyMap }

func (c confirmKeys) ShortHelp() []key.Binding  { return []key.Binding{c.k.Confirm, c.k.Cancel} }
func (c confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{c.ShortHelp()} }

type entriesLoadedMsg struct {
	entries []domain.TaskLogEntry
	err     error
}

type entryDeletedMsg struct {
	index   int
	deleted domain.TaskLogEntry
	err     error
}

// manageModel lists the log and deletes entries by index.
type manageModel struct {
	svc   service.LogService
	today time.Time
	keys  manageKeyMap
	help  help.Model

	entries []domain.TaskLogEntry
	cursor  int
	offset  int
	height  int
	loading bool
	pending bool
	status  string
	err     error
}

func newManageModel(svc service.LogService, today time.Time) manageModel {
	return manageModel{
		svc:     svc,
		today:   today,
		keys:    newManageKeyMap(),
		help:    help.New(),
		loading: true,
		height:  20,
	}
}

func (m manageModel) Init() tea.Cmd {
	return m.load()
}

func (m manageModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		entries, err := svc.List(context.Background())
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m manageModel) deleteAt(index int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		deleted, err := svc.Delete(context.Background(), index)
		return entryDeletedMsg{index: index, deleted: deleted, err: err}
	}
}

func (m manageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// Title, blank line, table header and separator, status and help.
		m.height = max(msg.Height-7, 1)
		m.clampCursor()
		return m, nil

	case entriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.entries = msg.entries
		}
		m.clampCursor()
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Deleted " + describeDeleted(msg.index, msg.deleted)
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		if m.pending {
			switch {
			case key.Matches(msg, m.keys.Confirm):
				m.pending = false
				return m, m.deleteAt(m.cursor)
			case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
				m.pending = false
				m.status = "Cancelled."
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Delete):
			if len(m.entries) > 0 {
				m.pending = true
				m.status = ""
			}
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			m.status = ""
			return m, m.load()
		}
		m.clampCursor()
	}
	return m, nil
}

func (m *manageModel) clampCursor() {
	m.cursor = min(max(m.cursor, 0), max(len(m.entries)-1, 0))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

var (
	manageCursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	manageWarnStyle   = lipgloss.NewStyle().Foreground(formatter.ColorYellow).Bold(true)
)

func (m manageModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Manage logs") + "\n\n")

	switch {
	case m.loading && m.entries == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case len(m.entries) == 0:
		b.WriteString(formatter.Dim("No entries logged yet.") + "\n")
	default:
		end := min(m.offset+m.height, len(m.entries))
		rows := make([][]string, 0, end-m.offset)
		for i := m.offset; i < end; i++ {
			e := m.entries[i]
			marker := "  "
			if i == m.cursor {
				marker = manageCursorStyle.Render("▸ ")
			}
			rows = append(rows, []string{
				marker + formatter.Dim(fmt.Sprintf("%d", i)),
				domain.FormatDate(e.Date) + " " + formatter.Dim(formatter.RelativeDay(e.Date, m.today)),
				formatter.Truncate(e.Task, 40),
				formatter.StatusPill(e),
				formatter.FormatRating(e.Rating),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"  #", "DATE", "TASK", "STATUS", "RATING"}, rows))
	}

	b.WriteString("\n")
	switch {
	case m.pending:
		b.WriteString(manageWarnStyle.Render(fmt.Sprintf("Delete entry %d? (y/n)", m.cursor)) + "\n")
		b.WriteString(m.help.View(confirmKeys{m.keys}))
	default:
		if m.err != nil {
			b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
		} else if m.status != "" {
			b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
		}
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func newManageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "manage",
		Short: "Browse and delete log entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("manage needs an interactive terminal; use \"tally list\" and \"tally delete\"")
			}
			p := tea.NewProgram(newManageModel(app.Log, app.now()), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
