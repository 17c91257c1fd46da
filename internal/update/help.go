package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.pageBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentPage: string(m.Route.Page),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Home, Action: "go to Home"},
		{Key: m.Keys.Workspace, Action: "go to Workspace"},
		{Key: m.Keys.Pricing, Action: "go to Pricing"},
		{Key: m.Keys.Login, Action: "go to Log in"},
		{Key: m.Keys.Theme, Action: "toggle light/dark"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) pageBindings() []KeyBinding {
	switch m.Route.Page {
	case router.PageWorkspace:
		return []KeyBinding{
			{Key: "tab", Action: "focus/unfocus prompt"},
			{Key: "enter/ctrl+s", Action: "generate schedule"},
			{Key: "ctrl+u", Action: "upload files"},
			{Key: "r", Action: "retry failed generation"},
			{Key: "esc", Action: "cancel / dismiss / leave prompt"},
		}
	case router.PageLogin:
		return []KeyBinding{
			{Key: "tab", Action: "next field"},
			{Key: "ctrl+r", Action: "show/hide password"},
			{Key: "enter", Action: "sign in"},
			{Key: "esc", Action: "leave form"},
		}
	case router.PageLanding, router.PagePricing:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll"},
		}
	default:
		return []KeyBinding{{Key: m.Keys.Home, Action: "return to Home"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.pageBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.pageBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
