package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	label string
	page  string
}

// MenuModel is the start page shown when there is no stored session.
type MenuModel struct {
	entries []menuEntry
	idx     int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		entries: []menuEntry{
			{label: "Log in", page: pageLogin},
			{label: "Register", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = max(m.idx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.idx = min(m.idx+1, len(m.entries)-1)
	case key.Matches(keyMsg, keys.enter):
		page := m.entries[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		if i == m.idx {
			lines = append(lines, selectedStyle.Render("> "+e.label))
			continue
		}
		lines = append(lines, "  "+e.label)
	}

	return renderPage("NOTE KEEPER", strings.Join(lines, "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
