// Package theme owns the light/dark preference and the style root it is
// applied to.
package theme

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

func ModeFor(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// Document is the style root every view renders through. Its renderer's
// dark-background flag is the visual mode marker.
type Document struct {
	mu       sync.RWMutex
	renderer *lipgloss.Renderer
	mode     Mode
}

func NewDocument(w io.Writer, opts ...termenv.OutputOption) *Document {
	r := lipgloss.NewRenderer(w, opts...)
	r.SetHasDarkBackground(false)
	return &Document{renderer: r, mode: ModeLight}
}

// NewPlainDocument renders without colour escapes; used by tests and exports.
func NewPlainDocument() *Document {
	return NewDocument(io.Discard, termenv.WithProfile(termenv.Ascii))
}

func (d *Document) Apply(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderer.SetHasDarkBackground(dark)
	d.mode = ModeFor(dark)
}

func (d *Document) Mode() Mode {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

func (d *Document) Renderer() *lipgloss.Renderer {
	return d.renderer
}

// GlamourStyle names the markdown style matching the current mode.
func (d *Document) GlamourStyle() string {
	return string(d.Mode())
}
