package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sleighlab/sleigh/pkg/match"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseRoster opens the interactive roster browser.
func browseRoster(cfg *match.Configuration) error {
	_, err := tea.NewProgram(newRosterModel(cfg)).Run()
	return err
}

// rosterModel is the bubbletea model for browsing participants.
// The left of the screen lists names; the detail pane below shows the
// highlighted participant's attributes and exclusion lists.
type rosterModel struct {
	cfg    *match.Configuration
	ids    []match.ID
	cursor int
	height int
	offset int
}

func newRosterModel(cfg *match.Configuration) rosterModel {
	return rosterModel{
		cfg:    cfg,
		ids:    cfg.Registry().IDs(),
		height: 15,
	}
}

func (m rosterModel) Init() tea.Cmd {
	return nil
}

func (m rosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.ids)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m rosterModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Roster (%d participants)", len(m.ids))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.ids) {
		end = len(m.ids)
	}
	for i := m.offset; i < end; i++ {
		p := m.cfg.Registry().Get(m.ids[i])
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("› " + p.Name))
		} else {
			b.WriteString(listNormalStyle.Render("  " + p.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	return b.String()
}

// detailView renders the highlighted participant's attributes.
func (m rosterModel) detailView() string {
	if len(m.ids) == 0 {
		return listDimStyle.Render("roster is empty")
	}

	id := m.ids[m.cursor]
	p := m.cfg.Registry().Get(id)

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(p.Name))
	if p.Contact != "" {
		b.WriteString(listDimStyle.Render("  " + p.Contact))
	}
	b.WriteString("\n")
	if p.Interests != "" {
		b.WriteString(listDimStyle.Render("interests: ") + p.Interests + "\n")
	}
	if names := m.names(m.cfg.CannotSendTo(id)); names != "" {
		b.WriteString(listDimStyle.Render("won't send to: ") + names + "\n")
	}
	if names := m.names(m.cfg.CannotReceiveFrom(id)); names != "" {
		b.WriteString(listDimStyle.Render("won't receive from: ") + names + "\n")
	}
	return b.String()
}

func (m rosterModel) names(ids []match.ID) string {
	if len(ids) == 0 {
		return ""
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = m.cfg.Registry().Name(id)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
