package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/scheduleai/internal/theme"
)

func plainStyles() Styles {
	return NewStyles(theme.NewPlainDocument())
}

func sampleEvents() []EventCardData {
	return []EventCardData{
		{Time: "9:00 AM", Duration: "2h", Title: "Morning Strategy Session", Description: "Plan", Tag: "purple"},
		{Time: "11:30 AM", Duration: "1h 30m", Title: "Client Presentation Prep", Description: "Slides", Tag: "orange"},
		{Time: "1:00 PM", Duration: "1h", Title: "Lunch & Networking", Description: "Meetup", Tag: "green"},
	}
}

func TestRenderNavHighlightsAndAuthActions(t *testing.T) {
	s := plainStyles()
	out := RenderNav(s, NavData{
		Links: []NavLinkData{
			{Label: "Home", Key: "1"},
			{Label: "Workspace", Key: "2", Active: true},
		},
		ShowAuthActions: true,
		Mode:            "dark",
	})
	for _, want := range []string{"ScheduleAI", "[2] Workspace", "Log in", "Sign up", "theme: dark"} {
		if !strings.Contains(out, want) {
			t.Fatalf("nav missing %q: %q", want, out)
		}
	}

	out = RenderNav(s, NavData{Mode: "light"})
	if strings.Contains(out, "Log in") || strings.Contains(out, "Sign up") {
		t.Fatalf("expected auth actions hidden: %q", out)
	}
}

func TestRenderWorkspaceKeepsEventOrder(t *testing.T) {
	out := RenderWorkspace(plainStyles(), WorkspaceData{Events: sampleEvents(), PromptView: "> "})
	first := strings.Index(out, "Morning Strategy Session")
	second := strings.Index(out, "Client Presentation Prep")
	third := strings.Index(out, "Lunch & Networking")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing event titles: %q", out)
	}
	if !(first < second && second < third) {
		t.Fatalf("events out of order: %d %d %d", first, second, third)
	}
	if !strings.Contains(out, ScheduleDateLabel) || !strings.Contains(out, "Quick Actions") {
		t.Fatalf("missing workspace chrome: %q", out)
	}
}

func TestRenderWorkspaceButtonState(t *testing.T) {
	s := plainStyles()
	out := RenderWorkspace(s, WorkspaceData{})
	if !strings.Contains(out, "(disabled)") {
		t.Fatalf("expected disabled button: %q", out)
	}
	out = RenderWorkspace(s, WorkspaceData{CanSubmit: true})
	if strings.Contains(out, "(disabled)") {
		t.Fatalf("expected enabled button: %q", out)
	}
}

func TestRenderWorkspaceProgressAndFailure(t *testing.T) {
	s := plainStyles()
	out := RenderWorkspace(s, WorkspaceData{Submitting: true, SpinnerView: "*"})
	if !strings.Contains(out, "generating schedule") {
		t.Fatalf("expected progress line: %q", out)
	}
	out = RenderWorkspace(s, WorkspaceData{Failed: true, FailureReason: "timeout"})
	if !strings.Contains(out, "generation failed: timeout") || !strings.Contains(out, "[r] retry") {
		t.Fatalf("expected failure banner: %q", out)
	}
}

func TestRenderLoginAndNotFound(t *testing.T) {
	s := plainStyles()
	out := RenderLogin(s, LoginData{EmailView: "email>", PasswordView: "password>", Message: "login attempt recorded"})
	for _, want := range []string{"Welcome Back", "email>", "password>", "Sign In", "login attempt recorded"} {
		if !strings.Contains(out, want) {
			t.Fatalf("login missing %q: %q", want, out)
		}
	}
	out = RenderNotFound(s, "/nowhere")
	if !strings.Contains(out, "404") || !strings.Contains(out, "/nowhere") {
		t.Fatalf("unexpected not found page: %q", out)
	}
}

func TestPricingMarkdownListsPlans(t *testing.T) {
	md := PricingMarkdown()
	for _, want := range []string{"## Free", "## Pro (Most Popular)", "## Enterprise", "$12", "On-premise deployment"} {
		if !strings.Contains(md, want) {
			t.Fatalf("pricing markdown missing %q", want)
		}
	}
	out := RenderMarkdown(plainStyles(), md, 80)
	if !strings.Contains(out, "Enterprise") || !strings.Contains(out, "$20") {
		t.Fatalf("rendered pricing missing plan: %q", out)
	}
}

func TestLandingMarkdownIncludesPreview(t *testing.T) {
	md := LandingMarkdown([]string{"9:00 AM Morning Strategy Session"})
	if !strings.Contains(md, "Why Choose ScheduleAI?") || !strings.Contains(md, "9:00 AM Morning Strategy Session") {
		t.Fatalf("unexpected landing markdown: %q", md)
	}
	if strings.Contains(LandingMarkdown(nil), "Today's Schedule") {
		t.Fatal("expected preview section omitted without events")
	}
}

func TestExportHTMLCarriesMode(t *testing.T) {
	out, err := ExportHTML("Pricing", "# Simple pricing", true)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, `class="dark"`) || !strings.Contains(out, "<h1>Simple pricing</h1>") {
		t.Fatalf("unexpected html: %q", out)
	}
	out, err = ExportHTML("Pricing", "# Simple pricing", false)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.Contains(out, `class="dark"`) {
		t.Fatalf("light export should not carry dark class: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown(plainStyles(), "  ", 80); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestPlainDocumentUsesNoTTYMarkdown(t *testing.T) {
	doc := theme.NewPlainDocument()
	if NewStyles(doc).GlamourStyle() != "notty" {
		t.Fatal("plain documents render markdown without colour")
	}
}
