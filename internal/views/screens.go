package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type NavLinkData struct {
	Label  string
	Key    string
	Active bool
}

type NavData struct {
	Links           []NavLinkData
	ShowAuthActions bool
	Mode            string
}

type EventCardData struct {
	Time        string
	Duration    string
	Title       string
	Description string
	Tag         string
}

type WorkspaceData struct {
	Events        []EventCardData
	PromptView    string
	PromptFocused bool
	CanSubmit     bool
	Submitting    bool
	SpinnerView   string
	Failed        bool
	FailureReason string
	Width         int
}

type LoginData struct {
	EmailView    string
	PasswordView string
	ShowPassword bool
	Message      string
}

type HelpPanelData struct {
	CurrentPage string
	Bindings    []string
	HelpView    string
}

func RenderNav(s Styles, data NavData) string {
	parts := []string{s.Brand.Render("ScheduleAI")}
	for _, link := range data.Links {
		label := fmt.Sprintf("[%s] %s", link.Key, link.Label)
		if link.Active {
			parts = append(parts, s.NavActive.Render(label))
		} else {
			parts = append(parts, s.NavItem.Render(label))
		}
	}
	if data.ShowAuthActions {
		parts = append(parts, s.NavItem.Render("[4] Log in"), s.ButtonEnabled.Render("Sign up"))
	}
	parts = append(parts, s.Muted.Render("theme: "+data.Mode))
	return strings.Join(parts, "  ")
}

// RenderEventCard draws one schedule entry; time is coloured by tag.
func RenderEventCard(s Styles, ev EventCardData, width int) string {
	head := s.Tag(ev.Tag).Render(ev.Time) + "  " + s.Muted.Render(ev.Duration)
	body := strings.Join([]string{head, s.Title.Render(ev.Title), s.Subtitle.Render(ev.Description)}, "\n")
	if width > 0 {
		return s.Card.Width(width).Render(body)
	}
	return s.Card.Render(body)
}

func RenderWorkspace(s Styles, data WorkspaceData) string {
	width := data.Width
	if width <= 0 {
		width = 96
	}
	cardWidth := width/2 - 4
	if cardWidth < 24 {
		cardWidth = 24
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Your AI Workspace") + "\n")
	b.WriteString(s.Subtitle.Render("Describe your goals and watch AI create the perfect schedule for you.") + "\n\n")
	b.WriteString(s.Title.Render("Today's Schedule") + "  " + s.Muted.Render(ScheduleDateLabel) + "\n")

	if len(data.Events) == 0 {
		b.WriteString(s.Muted.Render("(no events)") + "\n")
	}
	for i := 0; i < len(data.Events); i += 2 {
		row := []string{RenderEventCard(s, data.Events[i], cardWidth)}
		if i+1 < len(data.Events) {
			row = append(row, RenderEventCard(s, data.Events[i+1], cardWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	b.WriteString("\n" + data.PromptView + "\n")
	button := s.ButtonDisabled.Render("[ Generate Schedule ] (disabled)")
	if data.CanSubmit {
		button = s.ButtonEnabled.Render("[ Generate Schedule ]")
	}
	b.WriteString(s.NavItem.Render("[ctrl+u] Upload Files") + " " + s.Muted.Render("Add context documents") + "   " + button + "\n")

	switch {
	case data.Submitting:
		b.WriteString(data.SpinnerView + " generating schedule... (esc to cancel)\n")
	case data.Failed:
		b.WriteString(s.Error.Render("generation failed: "+data.FailureReason) + "\n")
		b.WriteString(s.Muted.Render("[r] retry  [esc] dismiss") + "\n")
	}

	b.WriteString("\n" + s.Title.Render("Quick Actions") + "\n")
	for _, qa := range QuickActions() {
		b.WriteString(fmt.Sprintf("- %s: %s\n", qa.Title, s.Muted.Render(qa.Description)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderLogin(s Styles, data LoginData) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Welcome Back") + "\n")
	b.WriteString(s.Subtitle.Render("Sign in to continue to your workspace") + "\n\n")
	b.WriteString("Email\n" + data.EmailView + "\n")
	b.WriteString("Password\n" + data.PasswordView + "\n")
	reveal := "[ctrl+r] show password"
	if data.ShowPassword {
		reveal = "[ctrl+r] hide password"
	}
	b.WriteString(s.Muted.Render(reveal+"   Forgot password?") + "\n\n")
	b.WriteString(s.ButtonEnabled.Render("[enter] Sign In") + "\n")
	if data.Message != "" {
		b.WriteString(s.Muted.Render(data.Message) + "\n")
	}
	b.WriteString("\n" + s.Muted.Render("Don't have an account? Sign up for free") + "\n")
	b.WriteString(s.Muted.Render("By signing in, you agree to our Terms of Service and Privacy Policy"))
	return b.String()
}

func RenderNotFound(s Styles, path string) string {
	return strings.Join([]string{
		s.Title.Render("404"),
		s.Title.Render("Page not found"),
		s.Subtitle.Render(fmt.Sprintf("Sorry, we couldn't find %s. It may have been moved or deleted.", path)),
		s.ButtonEnabled.Render("[1] Return to Home"),
	}, "\n")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s page:\n%s\n%s",
		strings.ToLower(data.CurrentPage),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
