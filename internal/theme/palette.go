package theme

import "github.com/charmbracelet/lipgloss"

// Palette is resolved against the Document's renderer at render time, so one
// value serves both modes.
type Palette struct {
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Primary    lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Tags       map[string]lipgloss.AdaptiveColor
}

func DefaultPalette() Palette {
	return Palette{
		Foreground: lipgloss.AdaptiveColor{Light: "#1F1B2E", Dark: "#ECE8F5"},
		Muted:      lipgloss.AdaptiveColor{Light: "#6B6480", Dark: "#9A93AD"},
		Primary:    lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"},
		Border:     lipgloss.AdaptiveColor{Light: "#D6D0E4", Dark: "#3B3550"},
		Success:    lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
		Error:      lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
		Tags: map[string]lipgloss.AdaptiveColor{
			"purple":  {Light: "#7C3AED", Dark: "#C4B5FD"},
			"orange":  {Light: "#C2410C", Dark: "#FDBA74"},
			"green":   {Light: "#15803D", Dark: "#86EFAC"},
			"primary": {Light: "#6D28D9", Dark: "#A78BFA"},
			"pink":    {Light: "#BE185D", Dark: "#F9A8D4"},
		},
	}
}

// Tag falls back to Primary for unknown categories.
func (p Palette) Tag(name string) lipgloss.AdaptiveColor {
	if c, ok := p.Tags[name]; ok {
		return c
	}
	return p.Primary
}
