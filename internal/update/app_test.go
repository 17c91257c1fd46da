package update

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/scheduleai/internal/config"
	"github.com/sandeepkv93/scheduleai/internal/generation"
	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
	"github.com/sandeepkv93/scheduleai/internal/storage"
	"github.com/sandeepkv93/scheduleai/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func newTestModel(t *testing.T, gen generation.Generator, policy string) Model {
	t.Helper()
	cfg := config.DefaultRuntimeConfig()
	cfg.GenerationDelay = config.Duration{Duration: 10 * time.Millisecond}
	if policy != "" {
		cfg.ApplyPolicy = policy
	}
	return NewModelWithConfig(cfg, Dependencies{Generator: gen})
}

func workspaceWithPrompt(t *testing.T, m Model, prompt string) Model {
	t.Helper()
	m, _ = press(t, m, runes("2"), tea.KeyMsg{Type: tea.KeyTab}, runes(prompt))
	if !m.PromptFocused {
		t.Fatal("expected prompt focused")
	}
	return m
}

func finishGeneration(t *testing.T, m Model) Model {
	t.Helper()
	task := m.Workspace.Pending()
	if task == nil {
		t.Fatal("expected a pending generation task")
	}
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("generation did not finish")
	}
	m, _ = press(t, m, GenerationDoneMsg{Result: task.Result()})
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.Route.Page != router.PageLanding {
		t.Fatalf("expected landing page, got %q", m.Route.Page)
	}
	if m.Keys.Quit != "q" || m.Keys.Theme != "t" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if m.Events.Len() != 5 {
		t.Fatalf("expected 5 seeded events, got %d", m.Events.Len())
	}
	if m.Workspace.Status() != generation.StatusIdle {
		t.Fatalf("expected idle workspace, got %q", m.Workspace.Status())
	}
	if m.ApplyPolicy != schedule.ApplyNone {
		t.Fatalf("expected no-op apply policy, got %q", m.ApplyPolicy)
	}
}

func TestStartPathFromConfig(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.StartPath = "/pricing"
	m := NewModelWithConfig(cfg, Dependencies{})
	if m.Route.Page != router.PagePricing {
		t.Fatalf("expected pricing page, got %q", m.Route.Page)
	}
}

func TestNumberKeysNavigate(t *testing.T) {
	m := NewModel()
	cases := []struct {
		key  string
		want router.Page
	}{
		{"2", router.PageWorkspace},
		{"3", router.PagePricing},
		{"4", router.PageLogin},
		{"1", router.PageLanding},
	}
	for _, tc := range cases {
		m, _ = press(t, m, runes(tc.key))
		if m.Route.Page != tc.want {
			t.Fatalf("key %s: expected %q, got %q", tc.key, tc.want, m.Route.Page)
		}
	}
}

func TestNavigateMsgUnknownPathShowsNotFound(t *testing.T) {
	m, _ := press(t, NewModel(), NavigateMsg{Path: "/settings"})
	if m.Route.Page != router.PageNotFound {
		t.Fatalf("expected not found, got %q", m.Route.Page)
	}
	out := m.View()
	if !strings.Contains(out, "404") || !strings.Contains(out, "/settings") {
		t.Fatalf("expected 404 page: %q", out)
	}
}

func TestLoginPageHidesAuthActions(t *testing.T) {
	m, _ := press(t, NewModel(), runes("4"))
	if strings.Contains(m.View(), "[4] Log in") {
		t.Fatalf("expected auth actions hidden on login")
	}
	m, _ = press(t, m, runes("1"))
	if !strings.Contains(m.View(), "[4] Log in") {
		t.Fatalf("expected auth actions on landing")
	}
}

func TestThemeToggleKeyPersistsPreference(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	store := theme.NewStore(repo, theme.NewPlainDocument(), nil)
	if store.Load(ctx) {
		t.Fatal("expected light mode with empty storage")
	}
	m := NewModelWithConfig(config.DefaultRuntimeConfig(), Dependencies{Theme: store})

	m, _ = press(t, m, runes("t"))
	if !m.Preference().IsDark() || store.Document().Mode() != theme.ModeDark {
		t.Fatal("expected dark mode after toggle")
	}
	raw, err := repo.GetSetting(ctx, theme.DarkModeKey)
	if err != nil || raw != "true" {
		t.Fatalf("expected persisted true, got %q err=%v", raw, err)
	}
	if !strings.Contains(m.View(), "theme: dark") {
		t.Fatalf("expected nav to show dark mode")
	}

	m, _ = press(t, m, runes("t"))
	raw, _ = repo.GetSetting(ctx, theme.DarkModeKey)
	if m.Preference().IsDark() || raw != "false" {
		t.Fatalf("expected light mode persisted as false, got %q", raw)
	}
}

func TestWhitespacePromptDoesNotSubmit(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, nil, ""), "   ")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for blank prompt")
	}
	if m.Workspace.Status() != generation.StatusIdle || m.Workspace.Pending() != nil {
		t.Fatalf("expected idle with no task, got %q", m.Workspace.Status())
	}
	if !strings.Contains(m.View(), "(disabled)") {
		t.Fatal("expected disabled generate button")
	}
}

func TestSubmitPromptRunsGeneration(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, nil, ""), "Plan my Monday")
	if !m.Workspace.CanSubmit() {
		t.Fatal("expected submit enabled")
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected generation command")
	}
	if m.Workspace.Status() != generation.StatusSubmitting {
		t.Fatalf("expected submitting, got %q", m.Workspace.Status())
	}
	if m.Prompt() != "Plan my Monday" {
		t.Fatalf("expected draft kept while submitting, got %q", m.Prompt())
	}
	if !strings.Contains(m.View(), "generating schedule") {
		t.Fatal("expected progress indicator")
	}

	m = finishGeneration(t, m)
	if m.Workspace.Status() != generation.StatusIdle {
		t.Fatalf("expected idle after generation, got %q", m.Workspace.Status())
	}
	if m.Prompt() != "" || m.promptArea.Value() != "" {
		t.Fatalf("expected cleared draft, got %q / %q", m.Prompt(), m.promptArea.Value())
	}
	if m.Events.Len() != 5 {
		t.Fatalf("expected event list unchanged, got %d", m.Events.Len())
	}
}

func TestSubmitWhileSubmittingIsIgnored(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, generation.SimulatedGenerator{Delay: time.Hour}, ""), "first")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	task := m.Workspace.Pending()
	defer task.Cancel()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected second submit to be declined")
	}
	if m.Workspace.Pending() != task {
		t.Fatal("expected the original task to remain outstanding")
	}
}

func TestGlobalKeysAreTypedIntoFocusedPrompt(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, nil, ""), "q1t")
	if m.Quitting || m.Route.Page != router.PageWorkspace || m.Preference().IsDark() {
		t.Fatal("expected keys typed into prompt instead of acting globally")
	}
	if m.Prompt() != "q1t" {
		t.Fatalf("unexpected prompt: %q", m.Prompt())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("3"))
	if m.Route.Page != router.PagePricing {
		t.Fatalf("expected navigation after blur, got %q", m.Route.Page)
	}
}

func TestLeavingWorkspaceCancelsGeneration(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, generation.SimulatedGenerator{Delay: time.Hour}, ""), "Plan my week")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	task := m.Workspace.Pending()

	m, _ = press(t, m, NavigateMsg{Path: "/pricing"})
	if m.Workspace.Status() != generation.StatusIdle {
		t.Fatalf("expected idle after leaving, got %q", m.Workspace.Status())
	}
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("expected cancelled task to finish")
	}
	m, _ = press(t, m, GenerationDoneMsg{Result: task.Result()})
	if m.Workspace.Status() != generation.StatusIdle || m.Prompt() != "Plan my week" {
		t.Fatalf("stale result changed state: %q %q", m.Workspace.Status(), m.Prompt())
	}
}

func TestReenteringWorkspaceClearsIdleDraft(t *testing.T) {
	m := workspaceWithPrompt(t, newTestModel(t, nil, ""), "Plan my week")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("3"))
	if m.Prompt() != "Plan my week" {
		t.Fatalf("expected draft kept while away, got %q", m.Prompt())
	}
	m, _ = press(t, m, runes("2"))
	if m.Prompt() != "" || m.promptArea.Value() != "" {
		t.Fatalf("expected cleared draft on re-entry, got %q / %q", m.Prompt(), m.promptArea.Value())
	}
	if m.Events.Len() != 5 {
		t.Fatalf("expected reseeded schedule, got %d events", m.Events.Len())
	}
}

func TestFailedGenerationRetryAndDismiss(t *testing.T) {
	calls := 0
	gen := generation.GeneratorFunc(func(context.Context, generation.Request) ([]schedule.Event, error) {
		calls++
		return nil, errors.New("backend unavailable")
	})
	m := workspaceWithPrompt(t, newTestModel(t, gen, ""), "Plan my week")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finishGeneration(t, m)
	if m.Workspace.Status() != generation.StatusFailed || !m.Status.IsError {
		t.Fatalf("expected failed state, got %q %+v", m.Workspace.Status(), m.Status)
	}
	if !strings.Contains(m.View(), "generation failed: backend unavailable") {
		t.Fatal("expected failure banner")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Workspace.Status() != generation.StatusSubmitting {
		t.Fatalf("expected retry to resubmit, got %q", m.Workspace.Status())
	}
	m = finishGeneration(t, m)
	if calls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", calls)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Workspace.Status() != generation.StatusIdle || m.Prompt() != "Plan my week" {
		t.Fatalf("expected dismissed failure with kept draft, got %q %q", m.Workspace.Status(), m.Prompt())
	}
}

func TestApplyPolicyAppendAddsGeneratedEvents(t *testing.T) {
	gen := generation.SimulatedGenerator{Events: []schedule.Event{
		{Title: "Deep work", StartTime: "8:00 AM", Duration: "2h", ColorTag: schedule.ColorGreen},
	}}
	m := workspaceWithPrompt(t, newTestModel(t, gen, "append"), "Add deep work")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finishGeneration(t, m)

	list := m.Events.List()
	if len(list) != 6 || list[5].Title != "Deep work" {
		t.Fatalf("expected appended event, got %+v", list)
	}
	if list[5].ID == "" {
		t.Fatal("expected generated event to get an id")
	}
	if !strings.Contains(m.View(), "Deep work") {
		t.Fatal("expected appended event rendered")
	}
}

func TestPaletteGoAndGenerate(t *testing.T) {
	m := newTestModel(t, nil, "")
	m, _ = press(t, m, runes("/"), runes("go pricing"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Route.Page != router.PagePricing || m.Palette.Active {
		t.Fatalf("expected pricing via palette, got %q active=%v", m.Route.Page, m.Palette.Active)
	}

	m, cmd := press(t, m, runes("/"), runes("generate plan my monday"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected generation command from palette")
	}
	if m.Route.Page != router.PageWorkspace || m.Workspace.Status() != generation.StatusSubmitting {
		t.Fatalf("expected submitting in workspace, got %q %q", m.Route.Page, m.Workspace.Status())
	}
	m = finishGeneration(t, m)
	if m.Workspace.Status() != generation.StatusIdle {
		t.Fatalf("expected idle, got %q", m.Workspace.Status())
	}
}

func TestPaletteUnknownCommandSetsError(t *testing.T) {
	m, _ := press(t, NewModel(), runes("/"), runes("bogus"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %+v", m.Status)
	}
}

func TestLoginStubRecordsAttempt(t *testing.T) {
	m, _ := press(t, NewModel(),
		runes("4"),
		tea.KeyMsg{Type: tea.KeyTab}, runes("ada@example.com"),
		tea.KeyMsg{Type: tea.KeyTab}, runes("secret"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.EmailValue() != "ada@example.com" || m.PasswordValue() != "secret" {
		t.Fatalf("unexpected inputs: %q %q", m.EmailValue(), m.PasswordValue())
	}
	if m.Login.Attempts != 1 {
		t.Fatalf("expected one login attempt, got %d", m.Login.Attempts)
	}
	if strings.Contains(m.View(), "secret") {
		t.Fatal("password must be masked")
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := press(t, NewModel(), SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	m, _ = press(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
	m, _ = press(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m, cmd := press(t, NewModel(), runes("q"))
	if !m.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestHelpToggleShowsPageBindings(t *testing.T) {
	m, _ := press(t, NewModel(), runes("2"), runes("?"))
	out := m.View()
	if !strings.Contains(out, "workspace page:") || !strings.Contains(out, "generate schedule") {
		t.Fatalf("expected workspace help: %q", out)
	}
}
