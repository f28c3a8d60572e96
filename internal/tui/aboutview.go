package tui

import "strings"

// viewAbout renders the static about screen.
func (m AppModel) viewAbout() string {
	lines := []string{
		"",
		styleTitle.Render("cinemood"),
		"",
		"Describe the mood you're in and get movies to match. Search by",
		"free text, browse the top genres, and keep track of what you",
		"want to watch and what you've already seen. Your lists live on",
		"this machine and survive restarts.",
		"",
		styleDim.Render("Recommendations come from a text-similarity backend; ratings"),
		styleDim.Render("are community averages, not ours."),
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  " + l + "\n")
	}
	return b.String()
}
