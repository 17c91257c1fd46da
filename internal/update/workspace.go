package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/scheduleai/internal/generation"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

func (m Model) handleWorkspaceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if m.PromptFocused {
			m.blurPrompt()
			return m, nil
		}
		m.PromptFocused = true
		cmd := m.promptArea.Focus()
		return m, cmd
	case "enter", "ctrl+s":
		if m.Workspace.Status() == generation.StatusFailed {
			return m.retryGeneration()
		}
		return m.submitGeneration()
	case "ctrl+u":
		m.Workspace.UploadFile()
		m.Status = StatusBar{Text: "upload is not available yet"}
		return m, nil
	case "esc":
		return m.escapeWorkspace(), nil
	}

	if !m.PromptFocused {
		if msg.String() == "r" && m.Workspace.Status() == generation.StatusFailed {
			return m.retryGeneration()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if msg.Type == tea.KeyRunes {
		m.promptArea.InsertString(string(msg.Runes))
	} else {
		m.promptArea, cmd = m.promptArea.Update(msg)
	}
	m.Workspace.UpdatePrompt(m.promptArea.Value())
	return m, cmd
}

// escapeWorkspace unwinds one level: cancel, then dismiss, then blur.
func (m Model) escapeWorkspace() Model {
	switch m.Workspace.Status() {
	case generation.StatusSubmitting:
		if m.Workspace.Cancel() {
			m.Status = StatusBar{Text: "generation cancelled"}
		}
	case generation.StatusFailed:
		if err := m.Workspace.Acknowledge(); err == nil {
			m.Status = StatusBar{Text: "failure dismissed"}
		}
	default:
		m.blurPrompt()
	}
	return m
}

func (m Model) submitGeneration() (tea.Model, tea.Cmd) {
	task, err := m.Workspace.Submit(m.ctx)
	if err != nil {
		m.logger.Debug("submit declined", "err", err)
		return m, nil
	}
	m.Status = StatusBar{Text: "generating schedule"}
	return m, tea.Batch(m.genSpinner.Tick, waitForGenerationCmd(task))
}

func (m Model) retryGeneration() (tea.Model, tea.Cmd) {
	task, err := m.Workspace.Retry(m.ctx)
	if err != nil {
		m.logger.Debug("retry declined", "err", err)
		return m, nil
	}
	m.Status = StatusBar{Text: "retrying generation"}
	return m, tea.Batch(m.genSpinner.Tick, waitForGenerationCmd(task))
}

func (m *Model) completeGeneration(res generation.Result) {
	events, ok := m.Workspace.Complete(res)
	switch {
	case ok:
		m.promptArea.Reset()
		applied, err := m.Events.Apply(m.ApplyPolicy, events)
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("generated schedule rejected: %v", err), IsError: true}
			m.notify("Generation", m.Status.Text, "error")
			return
		}
		text := "schedule generated"
		if applied > 0 {
			text = fmt.Sprintf("schedule generated: %d event(s) %s", applied, m.ApplyPolicy)
		}
		m.Status = StatusBar{Text: text}
		m.notify("Generation", text, "info")
	case m.Workspace.Status() == generation.StatusFailed:
		m.Status = StatusBar{Text: "generation failed: " + m.Workspace.FailureReason(), IsError: true}
		m.notify("Generation", m.Status.Text, "error")
	}
}

func (m *Model) blurPrompt() {
	m.PromptFocused = false
	m.promptArea.Blur()
}

func (m Model) spinnerActive() bool {
	return m.Workspace.Status() == generation.StatusSubmitting
}

func waitForGenerationCmd(task *generation.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return GenerationDoneMsg{Result: task.Result()}
	}
}

// EventCards converts schedule entries to view data, keeping order.
func EventCards(events []schedule.Event) []views.EventCardData {
	cards := make([]views.EventCardData, 0, len(events))
	for _, ev := range events {
		cards = append(cards, views.EventCardData{
			Time:        ev.StartTime,
			Duration:    ev.Duration,
			Title:       ev.Title,
			Description: ev.Description,
			Tag:         string(ev.ColorTag),
		})
	}
	return cards
}

// PreviewLines formats events for the landing page preview.
func PreviewLines(events []schedule.Event) []string {
	out := make([]string, 0, len(events))
	for _, card := range EventCards(events) {
		out = append(out, views.PreviewLine(card))
	}
	return out
}

func (m Model) renderWorkspaceView() string {
	return views.RenderWorkspace(m.styles, views.WorkspaceData{
		Events:        EventCards(m.Events.List()),
		PromptView:    m.promptArea.View(),
		PromptFocused: m.PromptFocused,
		CanSubmit:     m.Workspace.CanSubmit(),
		Submitting:    m.Workspace.Status() == generation.StatusSubmitting,
		SpinnerView:   m.genSpinner.View(),
		Failed:        m.Workspace.Status() == generation.StatusFailed,
		FailureReason: m.Workspace.FailureReason(),
		Width:         m.width,
	})
}
