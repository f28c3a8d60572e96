package tui

import "strings"

// viewFeedback renders the feedback form: message, optional email, and the
// inline note (validation failure or acknowledgment).
func (m AppModel) viewFeedback() string {
	var b strings.Builder
	b.WriteString("\n" + styleTitle.Render("Send us feedback") + "\n\n")

	b.WriteString("  " + stylePaneTitle.Render("Message") + "\n")
	b.WriteString("  " + m.message.View() + "\n\n")
	b.WriteString("  " + stylePaneTitle.Render("Email") + "\n")
	b.WriteString("  " + m.email.View() + "\n\n")

	switch {
	case m.sending:
		b.WriteString("  " + m.spin.View() + styleLoading.Render(" sending...") + "\n")
	case m.note != "" && m.noteErr:
		b.WriteString("  " + styleError.Render(m.note) + "\n")
	case m.note != "":
		b.WriteString("  " + styleSuccess.Render(m.note) + "\n")
	}

	return b.String()
}
