package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderWithOverlay places overlay under page.
func renderWithOverlay(page, overlay string) string {
	return lipgloss.JoinVertical(lipgloss.Left, page, overlay)
}

func renderAuthTabs(active string) string {
	tabs := []struct {
		page  string
		label string
	}{
		{pageLogin, "Log in"},
		{pageRegister, "Register"},
	}

	rendered := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.page == active {
			rendered = append(rendered, activeTabStyle.Render(tab.label))
			continue
		}
		rendered = append(rendered, tabStyle.Render(tab.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// firstLines returns at most n leading lines of v.
func firstLines(v string, n int) string {
	lines := strings.Split(v, "\n")
	if len(lines) <= n {
		return v
	}
	return strings.Join(lines[:n], "\n") + "\n..."
}
