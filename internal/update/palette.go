package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/scheduleai/internal/commands"
	"github.com/sandeepkv93/scheduleai/internal/generation"
	"github.com/sandeepkv93/scheduleai/internal/router"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.commandInput.CursorEnd()
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Go: func(a commands.GoArgs) (commands.Result, error) {
			m.navigate(a.Path)
			return commands.Result{Message: fmt.Sprintf("navigated to %s", m.Route.Path)}, nil
		},
		Theme: func() (commands.Result, error) {
			m.toggleTheme()
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.themeStore.Mode())}, nil
		},
		Generate: func(a commands.GenerateArgs) (commands.Result, error) {
			if m.Route.Page != router.PageWorkspace {
				m.navigate(router.PathWorkspace)
			}
			if m.Workspace.Status() != generation.StatusIdle {
				return commands.Result{}, paletteError(fmt.Errorf("workspace is %s", m.Workspace.Status()))
			}
			m.promptArea.SetValue(a.Prompt)
			m.Workspace.UpdatePrompt(a.Prompt)
			task, err := m.Workspace.Submit(m.ctx)
			if err != nil {
				return commands.Result{}, paletteError(err)
			}
			next = tea.Batch(m.genSpinner.Tick, waitForGenerationCmd(task))
			return commands.Result{Message: "generating schedule"}, nil
		},
		Upload: func() (commands.Result, error) {
			m.Workspace.UploadFile()
			return commands.Result{Message: "upload is not available yet"}, nil
		},
		Retry: func() (commands.Result, error) {
			task, err := m.Workspace.Retry(m.ctx)
			if err != nil {
				return commands.Result{}, paletteError(err)
			}
			next = tea.Batch(m.genSpinner.Tick, waitForGenerationCmd(task))
			return commands.Result{Message: "retrying generation"}, nil
		},
		Dismiss: func() (commands.Result, error) {
			if err := m.Workspace.Acknowledge(); err != nil {
				return commands.Result{}, paletteError(err)
			}
			return commands.Result{Message: "failure dismissed"}, nil
		},
		Cancel: func() (commands.Result, error) {
			if !m.Workspace.Cancel() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no generation running"}
			}
			return commands.Result{Message: "generation cancelled"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	return m, next
}

func paletteError(err error) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
}
