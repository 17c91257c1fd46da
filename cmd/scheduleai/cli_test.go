package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
	"github.com/sandeepkv93/scheduleai/internal/update"
)

// runCLI runs the app against a throwaway state database.
func runCLI(t *testing.T, dbPath string, run ProgramRunner, args ...string) (string, error) {
	t.Helper()
	app := newCLIApp(run)
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	full := append([]string{"scheduleai", "--state-db", dbPath, "--log-file", ""}, args...)
	err := app.Run(full)
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.db")
}

func TestThemeCommandsPersistAcrossRuns(t *testing.T) {
	db := tempDB(t)

	out, err := runCLI(t, db, nil, "theme", "show")
	if err != nil {
		t.Fatalf("theme show: %v", err)
	}
	if strings.TrimSpace(out) != "light" {
		t.Fatalf("expected light by default, got %q", out)
	}

	out, err = runCLI(t, db, nil, "theme", "toggle")
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Fatalf("toggle: out=%q err=%v", out, err)
	}

	out, err = runCLI(t, db, nil, "theme", "show")
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Fatalf("expected persisted dark, out=%q err=%v", out, err)
	}

	out, err = runCLI(t, db, nil, "settings")
	if err != nil || !strings.Contains(out, "darkMode=true") {
		t.Fatalf("expected stored flag, out=%q err=%v", out, err)
	}

	out, err = runCLI(t, db, nil, "theme", "reset")
	if err != nil || strings.TrimSpace(out) != "light" {
		t.Fatalf("reset: out=%q err=%v", out, err)
	}
	out, _ = runCLI(t, db, nil, "settings", "--prefix", "dark")
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no stored settings after reset, got %q", out)
	}
}

func TestEphemeralDoesNotTouchDisk(t *testing.T) {
	db := tempDB(t)
	if _, err := runCLI(t, db, nil, "--ephemeral", "theme", "toggle"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := os.Stat(db); !os.IsNotExist(err) {
		t.Fatalf("expected no database file, stat err=%v", err)
	}
}

func TestEventsJSON(t *testing.T) {
	out, err := runCLI(t, tempDB(t), nil, "events", "--json")
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	var events []schedule.Event
	if err := json.Unmarshal([]byte(out), &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 5 || events[0].Title != "Morning Strategy Session" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestRenderPages(t *testing.T) {
	db := tempDB(t)
	out, err := runCLI(t, db, nil, "render", "/workspace")
	if err != nil {
		t.Fatalf("render workspace: %v", err)
	}
	if !strings.Contains(out, "Your AI Workspace") || !strings.Contains(out, "Team Retrospective") {
		t.Fatalf("unexpected workspace render: %q", out)
	}

	out, err = runCLI(t, db, nil, "render", "--html", "/pricing")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(out, "<h1>Simple, Transparent Pricing</h1>") || strings.Contains(out, `class="dark"`) {
		t.Fatalf("unexpected html: %q", out)
	}

	if _, err := runCLI(t, db, nil, "render", "--html", "/login"); err == nil {
		t.Fatal("expected html export of login to fail")
	}
}

func TestRenderRejectsFlagsAfterPath(t *testing.T) {
	db := tempDB(t)
	out, err := runCLI(t, db, nil, "render", "/pricing", "--html")
	if err == nil {
		t.Fatalf("expected trailing flag to be rejected, got %q", out)
	}
	if !strings.Contains(err.Error(), "flags go before the path") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultActionRunsProgram(t *testing.T) {
	db := tempDB(t)
	var got update.Model
	runner := func(m tea.Model) error {
		got = m.(update.Model)
		return nil
	}
	if _, err := runCLI(t, db, runner, "--start", "workspace", "--force-dark"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Route.Page != router.PageWorkspace {
		t.Fatalf("expected workspace start, got %q", got.Route.Page)
	}
	if !got.Preference().IsDark() {
		t.Fatal("expected forced dark mode")
	}

	out, err := runCLI(t, db, nil, "theme", "show")
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Fatalf("expected forced dark to persist, out=%q err=%v", out, err)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scheduleai.toml")
	if err := os.WriteFile(cfgPath, []byte("apply_policy = \"merge\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runCLI(t, filepath.Join(dir, "state.db"), nil, "--config", cfgPath, "events"); err == nil {
		t.Fatal("expected invalid apply policy to fail")
	}
}
