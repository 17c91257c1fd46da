package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandeepkv93/scheduleai/internal/theme"
)

// Styles are built from the document renderer, so adaptive colours follow
// the applied mode.
type Styles struct {
	Brand          lipgloss.Style
	NavItem        lipgloss.Style
	NavActive      lipgloss.Style
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Muted          lipgloss.Style
	Card           lipgloss.Style
	Panel          lipgloss.Style
	ButtonEnabled  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Status         lipgloss.Style
	Error          lipgloss.Style
	Footer         lipgloss.Style

	palette  theme.Palette
	renderer *lipgloss.Renderer
	glamour  string
}

func NewStyles(doc *theme.Document) Styles {
	if doc == nil {
		doc = theme.NewPlainDocument()
	}
	r := doc.Renderer()
	p := theme.DefaultPalette()
	glamourStyle := doc.GlamourStyle()
	if r.ColorProfile() == termenv.Ascii {
		glamourStyle = "notty"
	}
	return Styles{
		Brand:          r.NewStyle().Bold(true).Foreground(p.Primary),
		NavItem:        r.NewStyle().Foreground(p.Muted),
		NavActive:      r.NewStyle().Bold(true).Foreground(p.Primary).Underline(true),
		Title:          r.NewStyle().Bold(true).Foreground(p.Foreground),
		Subtitle:       r.NewStyle().Foreground(p.Muted),
		Muted:          r.NewStyle().Foreground(p.Muted),
		Card:           r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		Panel:          r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		ButtonEnabled:  r.NewStyle().Bold(true).Foreground(p.Primary),
		ButtonDisabled: r.NewStyle().Foreground(p.Muted).Faint(true),
		Status:         r.NewStyle().Foreground(p.Success),
		Error:          r.NewStyle().Foreground(p.Error),
		Footer:         r.NewStyle().Foreground(p.Muted),
		palette:        p,
		renderer:       r,
		glamour:        glamourStyle,
	}
}

// Tag colours an event's time label by its category.
func (s Styles) Tag(tag string) lipgloss.Style {
	return s.renderer.NewStyle().Bold(true).Foreground(s.palette.Tag(tag))
}

func (s Styles) GlamourStyle() string {
	return s.glamour
}
