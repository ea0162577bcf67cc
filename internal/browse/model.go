package browse

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DjordjeVuckovic/user-directory/internal/debounce"
	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/dto"
)

// searchMsg is delivered by the debouncer once typing has settled.
type searchMsg struct{ term string }

type pageMsg struct {
	seq  uint64
	page *dto.UserListResponse
}

type errMsg struct {
	seq uint64
	err error
}

// Model is the Bubble Tea model of the directory browser.
type Model struct {
	client    Lister
	debouncer *debounce.Debouncer
	send      func(tea.Msg)

	input   string
	query   string
	page    *dto.UserListResponse
	err     error
	loading bool
	// seq identifies the latest request; older responses are dropped.
	seq uint64
}

func NewModel(client Lister, debouncer *debounce.Debouncer) *Model {
	return &Model{
		client:    client,
		debouncer: debouncer,
		send:      func(tea.Msg) {},
	}
}

// SetSender sets the function that feeds debounced searches back into the program,
// usually (*tea.Program).Send.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.send = send
}

func (m *Model) Init() tea.Cmd {
	return m.fetch("")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchMsg:
		return m, m.fetch(directory.State{Search: msg.term}.Encode())

	case pageMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.page = msg.page

	case errMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.debouncer.Stop()
		return m, tea.Quit

	case tea.KeyLeft:
		return m, m.follow(m.previous())

	case tea.KeyRight:
		return m, m.follow(m.next())

	case tea.KeyEnter:
		m.debouncer.Cancel()
		return m, m.fetch(directory.State{Search: m.input}.Encode())

	case tea.KeyBackspace:
		if m.input == "" {
			return m, nil
		}
		r := []rune(m.input)
		m.input = string(r[:len(r)-1])
		m.schedule()

	case tea.KeyCtrlU:
		m.input = ""
		m.schedule()

	case tea.KeySpace:
		m.input += " "
		m.schedule()

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		m.schedule()
	}

	return m, nil
}

func (m *Model) schedule() {
	term := m.input
	send := m.send
	m.debouncer.Schedule(func() {
		send(searchMsg{term: term})
	})
}

func (m *Model) previous() dto.PageLink {
	if m.page == nil {
		return dto.PageLink{}
	}
	return m.page.Previous
}

func (m *Model) next() dto.PageLink {
	if m.page == nil {
		return dto.PageLink{}
	}
	return m.page.Next
}

func (m *Model) follow(link dto.PageLink) tea.Cmd {
	q, ok := LinkQuery(link)
	if !ok {
		return nil
	}
	return m.fetch(q)
}

func (m *Model) fetch(rawQuery string) tea.Cmd {
	m.seq++
	seq := m.seq
	m.query = rawQuery
	m.loading = true

	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()

		page, err := client.List(ctx, rawQuery)
		if err != nil {
			return errMsg{seq: seq, err: err}
		}
		return pageMsg{seq: seq, page: page}
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(40)
)

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Users"))
	s.WriteString("\n")

	prompt := "🔍 " + m.input
	if m.debouncer.Pending() || m.loading {
		prompt += mutedStyle.Render(" …")
	}
	s.WriteString(inputStyle.Render(prompt))
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errStyle.Render("✗ Error: "))
		s.WriteString(m.err.Error())
		s.WriteString("\n\n")
	}

	if m.page != nil {
		s.WriteString(m.renderTable())
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf("Showing %d to %d of %d Users", m.page.From, m.page.To, m.page.TotalCount))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(m.help()))
	return s.String()
}

func (m *Model) renderTable() string {
	var s strings.Builder
	s.WriteString(headStyle.Render(fmt.Sprintf("%-6s %-28s %s", "Id", "Name", "Email")))
	s.WriteString("\n")
	for _, u := range m.page.Users {
		s.WriteString(fmt.Sprintf("%-6d %-28s %s\n", u.ID, truncate(u.Name, 28), mutedStyle.Render(u.Email)))
	}
	return s.String()
}

func (m *Model) help() string {
	keys := []string{"type to search"}
	if m.previous().Enabled {
		keys = append(keys, "← previous")
	}
	if m.next().Enabled {
		keys = append(keys, "→ next")
	}
	keys = append(keys, "esc quit")
	return strings.Join(keys, " • ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
