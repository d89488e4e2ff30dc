package tui

// renderErrorOverlay draws a failed operation's message in a bordered box.
// enter or esc dismisses it.
func renderErrorOverlay(message string) string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Something went wrong") + "\n\n" +
			message + "\n\n" +
			helpStyle.Render("enter/esc: close"),
	)
}
