package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/scheduleai/internal/generation"
	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.spinnerActive() {
			var cmd tea.Cmd
			m.genSpinner, cmd = m.genSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case GenerationDoneMsg:
		m.completeGeneration(typed.Result)
		return m, nil
	case NavigateMsg:
		m.navigate(typed.Path)
		return m, nil
	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return m.quit()
	}

	if m.Palette.Active {
		if keyStr == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg)
	}

	if m.capturingText() {
		switch m.Route.Page {
		case router.PageWorkspace:
			return m.handleWorkspaceKey(msg)
		case router.PageLogin:
			return m.handleLoginKey(msg), nil
		}
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Home, m.Keys.Workspace, m.Keys.Pricing, m.Keys.Login:
		if path, ok := router.PathForKey(keyStr); ok {
			m.navigate(path)
		}
		return m, nil
	case m.Keys.Theme:
		m.toggleTheme()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Quit:
		return m.quit()
	}

	switch m.Route.Page {
	case router.PageWorkspace:
		return m.handleWorkspaceKey(msg)
	case router.PageLogin:
		return m.handleLoginKey(msg), nil
	case router.PageLanding, router.PagePricing:
		var cmd tea.Cmd
		m.pageViewport, cmd = m.pageViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// capturingText is true while a text field owns the keyboard; global
// shortcuts are then typed as text.
func (m Model) capturingText() bool {
	switch m.Route.Page {
	case router.PageWorkspace:
		return m.PromptFocused
	case router.PageLogin:
		return m.Login.Focus != LoginFieldNone
	}
	return false
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Workspace.Cancel()
	m.Quitting = true
	m.logger.Info("quitting", "path", m.Route.Path)
	return m, tea.Quit
}

// navigate changes the current page. Leaving the workspace cancels a running
// generation; entering it reseeds the demo schedule and clears an idle draft.
func (m *Model) navigate(path string) {
	next := router.Resolve(path)
	prev := m.Route
	if prev.Page == router.PageWorkspace && next.Page != router.PageWorkspace {
		if m.Workspace.Cancel() {
			m.Status = StatusBar{Text: "generation cancelled"}
		}
		m.blurPrompt()
	}
	if next.Page == router.PageWorkspace && prev.Page != router.PageWorkspace {
		m.Events.Seed()
		if m.Workspace.Status() == generation.StatusIdle {
			m.promptArea.Reset()
			m.Workspace.UpdatePrompt("")
		}
	}
	if next.Page != router.PageLogin {
		m.blurLogin()
	}
	if next.Page == router.PageNotFound {
		m.logger.Error("404: user attempted to access non-existent route", "path", next.Path)
	}
	m.Route = next
	m.refreshPageContent()
}

func (m *Model) toggleTheme() {
	dark := m.themeStore.Toggle(m.ctx)
	m.styles = views.NewStyles(m.themeStore.Document())
	m.refreshPageContent()
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.themeStore.Mode())}
	m.logger.Debug("theme toggled", "dark", dark)
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.promptArea.SetWidth(max(m.width-4, 20))
	m.pageViewport.Width = m.width
	m.pageViewport.Height = max(m.height-6, 5)
	m.refreshPageContent()
}

// refreshPageContent re-renders markdown pages for the current width and
// mode.
func (m *Model) refreshPageContent() {
	var md string
	switch m.Route.Page {
	case router.PageLanding:
		md = views.LandingMarkdown(PreviewLines(m.Events.List()))
	case router.PagePricing:
		md = views.PricingMarkdown()
	default:
		return
	}
	m.pageViewport.SetContent(views.RenderMarkdown(m.styles, md, m.width))
	m.pageViewport.GotoTop()
}

func (m Model) View() string {
	var body string
	switch m.Route.Page {
	case router.PageWorkspace:
		body = m.renderWorkspaceView()
	case router.PageLogin:
		body = m.renderLoginView()
	case router.PageNotFound:
		body = views.RenderNotFound(m.styles, m.Route.Path)
	default:
		body = m.pageViewport.View()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	overlay := strings.TrimSpace(strings.Join([]string{m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))

	return views.RenderApp(m.styles, views.AppData{
		Nav:           m.renderNav(),
		Body:          body,
		Overlay:       overlay,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notification:  m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s home | %s workspace | %s pricing | %s login | %s theme | / cmd | %s help | %s quit",
			m.Keys.Home, m.Keys.Workspace, m.Keys.Pricing, m.Keys.Login, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}
