// Package tui provides the Bubble Tea terminal interface for browsing the
// favorites gallery. Painting lives here; the projection it paints comes
// from the gallery package and stays pure.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/keepsake/internal/gallery"
	"github.com/mesh-intelligence/keepsake/internal/modal"
	"github.com/mesh-intelligence/keepsake/internal/store"
)

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// visibleRows caps how many gallery rows are painted at once.
const visibleRows = 15

// Model is the Bubble Tea model for the gallery browser.
type Model struct {
	store  *store.Store
	detail *modal.Controller
	filter textinput.Model

	view   gallery.View
	cursor int

	status string
	err    error

	width  int
	height int
}

// NewModel creates a browser over the given store.
func NewModel(s *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	m := Model{
		store:  s,
		detail: modal.New(),
		filter: ti,
	}
	m.view = gallery.Render(s.List(), "")
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.err = nil

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if _, open := m.detail.Current(); open {
				m.detail.Close()
				return m, nil
			}
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.refresh()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if _, open := m.detail.Current(); !open {
				if item, ok := m.selected(); ok {
					m.detail.Open(item.URL)
				}
			}
			return m, nil

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < len(m.view.Items)-1 {
				m.cursor++
			}
			return m, nil

		case "ctrl+d":
			m.removeSelected()
			return m, nil
		}
	}

	// Everything else feeds the filter field; the gallery re-projects on
	// every keystroke.
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-projects the gallery from the store under the current filter
// and clamps the cursor to the new item count.
func (m *Model) refresh() {
	m.view = gallery.Render(m.store.List(), m.filter.Value())
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the item under the cursor.
func (m Model) selected() (gallery.Item, bool) {
	if len(m.view.Items) == 0 || m.cursor >= len(m.view.Items) {
		return gallery.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

// removeSelected deletes the favorite shown in the modal, or the one under
// the cursor when the modal is closed.
func (m *Model) removeSelected() {
	url, open := m.detail.Current()
	if !open {
		item, ok := m.selected()
		if !ok {
			return
		}
		url = item.URL
	}

	removed, err := m.store.Remove(url)
	if err != nil {
		m.err = err
		return
	}
	if removed {
		m.status = fmt.Sprintf("removed %s", gallery.Caption(url))
	}
	m.detail.Close()
	m.refresh()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("keepsake"))
	b.WriteString("\n")

	if url, open := m.detail.Current(); open {
		b.WriteString(m.viewModal(url))
	} else {
		b.WriteString(m.viewGallery())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) viewGallery() string {
	var b strings.Builder

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if m.view.Empty {
		b.WriteString(noticeStyle.Render(m.view.Notice))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		item := m.view.Items[i]
		line := fmt.Sprintf("%s  %s", captionStyle.Render(item.Caption), dimStyle.Render(item.URL))
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d favorite(s)", m.view.Total)))
	b.WriteString("\n")
	return b.String()
}

// window returns the half-open row range to paint, keeping the cursor in view.
func (m Model) window() (int, int) {
	total := len(m.view.Items)
	if total <= visibleRows {
		return 0, total
	}
	start := m.cursor - visibleRows/2
	if start < 0 {
		start = 0
	}
	if start+visibleRows > total {
		start = total - visibleRows
	}
	return start, start + visibleRows
}

func (m Model) viewModal(url string) string {
	body := fmt.Sprintf("%s\n\n%s",
		captionStyle.Render(gallery.Caption(url)),
		url,
	)
	return modalStyle.Render(body) + "\n"
}

func (m Model) helpText() string {
	if _, open := m.detail.Current(); open {
		return "esc: close • ctrl+d: remove • ctrl+c: quit"
	}
	return "type: filter • ↑/↓: select • enter: detail • ctrl+d: remove • esc: quit"
}

// Run starts the gallery browser.
func Run(s *store.Store) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
