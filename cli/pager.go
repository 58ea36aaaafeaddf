package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color("228")). // yellow
			Foreground(lipgloss.Color("0"))    // black

	currentLineStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// searchState tracks matching lines of the last search
type searchState struct {
	active  bool
	input   textinput.Model
	query   string
	lines   []int
	current int
}

// pagerModel shows rendered content in a scrollable viewport
type pagerModel struct {
	viewport viewport.Model
	lines    []string
	ready    bool
	search   searchState
}

// NewPager creates a new pager model with the given content
func NewPager(content string) *pagerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = helpStyle
	return &pagerModel{
		lines:  strings.Split(content, "\n"),
		search: searchState{input: ti},
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.active {
			switch msg.Type {
			case tea.KeyEscape:
				m.search.active = false
				m.search.input.Reset()
			case tea.KeyEnter:
				m.search.active = false
				m.find(m.search.input.Value())
				m.search.input.Reset()
			default:
				var cmd tea.Cmd
				m.search.input, cmd = m.search.input.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.find("")
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		case "/":
			m.search.active = true
			m.search.input.Focus()
			return m, textinput.Blink
		case "n":
			m.jump(1)
		case "N":
			m.jump(-1)
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.viewport.SetContent(m.render())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}
	if m.search.active {
		return m.viewport.View() + "\n" + m.search.input.View()
	}
	help := "↑/k ↓/j scroll • g/G top/bottom • / search • q quit"
	if n := len(m.search.lines); n > 0 {
		help = fmt.Sprintf("%q %d/%d • n next • N previous • esc clear • q quit", m.search.query, m.search.current+1, n)
	} else if m.search.query != "" {
		help = fmt.Sprintf("%q not found • / search • q quit", m.search.query)
	}
	return m.viewport.View() + "\n" + helpStyle.Render(help)
}

// find records the lines containing query. Lower case queries ignore case.
func (m *pagerModel) find(query string) {
	m.search.query = query
	m.search.lines = nil
	m.search.current = 0
	if query != "" {
		fold := query == strings.ToLower(query)
		for i, line := range m.lines {
			if fold {
				line = strings.ToLower(line)
			}
			if strings.Contains(line, query) {
				m.search.lines = append(m.search.lines, i)
			}
		}
	}
	m.viewport.SetContent(m.render())
	m.jump(0)
}

// jump moves the current match by delta, wrapping around, and scrolls to it
func (m *pagerModel) jump(delta int) {
	n := len(m.search.lines)
	if n == 0 {
		return
	}
	m.search.current = ((m.search.current+delta)%n + n) % n
	m.viewport.SetContent(m.render())
	m.viewport.SetYOffset(m.search.lines[m.search.current])
}

// render returns the content with matches highlighted
func (m *pagerModel) render() string {
	if len(m.search.lines) == 0 {
		return strings.Join(m.lines, "\n")
	}
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	for i, n := range m.search.lines {
		line := highlight(out[n], m.search.query)
		if i == m.search.current {
			line = currentLineStyle.Render(line)
		}
		out[n] = line
	}
	return strings.Join(out, "\n")
}

// highlight marks exact occurrences of query in line
func highlight(line, query string) string {
	if !strings.Contains(line, query) {
		return line
	}
	parts := strings.Split(line, query)
	return strings.Join(parts, searchHighlight.Render(query))
}

// RunPager starts the pager program with the given content
func RunPager(content string) error {
	p := tea.NewProgram(
		NewPager(content),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
