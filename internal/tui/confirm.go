package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	title := m.title
	if title == "" {
		title = "untitled note"
	}
	content := "Delete \"" + title + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
