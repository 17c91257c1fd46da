package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Nav           string
	Body          string
	Overlay       string
	StatusLine    string
	StatusIsError bool
	Notification  string
	Footer        string
}

func RenderApp(s Styles, data AppData) string {
	lines := []string{data.Nav, data.Body}
	if data.Overlay != "" {
		lines = append(lines, s.Panel.Render(data.Overlay))
	}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, s.Error.Render(data.StatusLine))
		} else {
			lines = append(lines, s.Status.Render(data.StatusLine))
		}
	}
	if data.Notification != "" {
		lines = append(lines, s.Muted.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, s.Footer.Render(data.Footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderMarkdown falls back to the raw text when glamour cannot render it.
func RenderMarkdown(s Styles, md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(s.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
