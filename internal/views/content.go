package views

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

type Benefit struct {
	Title       string
	Description string
}

type Plan struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         string
	Href        string
	Popular     bool
}

type QuickAction struct {
	Title       string
	Description string
}

// ScheduleDateLabel is the fixed date shown above the demo schedule.
const ScheduleDateLabel = "Monday, July 21st, 2025"

func Benefits() []Benefit {
	return []Benefit{
		{Title: "AI-Generated Schedules Tailored to You", Description: "Smart algorithms learn your preferences and create optimal schedules that fit your lifestyle."},
		{Title: "Upload Docs for Context-Aware Planning", Description: "Share your documents and let AI understand your commitments for more accurate scheduling."},
		{Title: "Beautiful Dark Interface for Focus", Description: "Elegantly designed dark theme that reduces eye strain and enhances productivity."},
	}
}

func Plans() []Plan {
	return []Plan{
		{
			Name:        "Free",
			Price:       "$0",
			Period:      "forever",
			Description: "Perfect for getting started with AI scheduling",
			Features:    []string{"5 AI-generated schedules per month", "Basic calendar integration", "Light and dark themes", "Email support"},
			CTA:         "Get Started",
			Href:        "/signup",
		},
		{
			Name:        "Pro",
			Price:       "$12",
			Period:      "per month",
			Description: "For professionals who need advanced scheduling",
			Features: []string{
				"Unlimited AI-generated schedules",
				"Document upload and analysis",
				"Advanced calendar integrations",
				"Priority support",
				"Custom scheduling templates",
				"Team collaboration features",
			},
			CTA:     "Start Pro Trial",
			Href:    "/signup?plan=pro",
			Popular: true,
		},
		{
			Name:        "Enterprise",
			Price:       "$20",
			Period:      "per month",
			Description: "For teams and organizations at scale",
			Features: []string{
				"Everything in Pro",
				"Unlimited team members",
				"SSO integration",
				"Custom AI training",
				"Dedicated support",
				"On-premise deployment",
			},
			CTA:  "Contact Sales",
			Href: "/contact",
		},
	}
}

func QuickActions() []QuickAction {
	return []QuickAction{
		{Title: "Import Calendar", Description: "Sync with existing calendars"},
		{Title: "Template Library", Description: "Choose from pre-built schedules"},
		{Title: "Time Preferences", Description: "Set your working hours"},
	}
}

// PreviewLine formats one event for the landing page schedule preview.
func PreviewLine(ev EventCardData) string {
	return fmt.Sprintf("**%s** (%s) %s: %s", ev.Time, ev.Duration, ev.Title, ev.Description)
}

// LandingMarkdown is the landing page copy. preview lines are the demo
// schedule, already formatted one per entry.
func LandingMarkdown(preview []string) string {
	var b strings.Builder
	b.WriteString("# Your AI-Powered Schedule, Instantly\n\n")
	b.WriteString("Turn your ideas into perfectly balanced plans in seconds. Let AI understand your commitments and create schedules that actually work for your life.\n\n")
	b.WriteString("**Get Started for Free** (`/signup`) · **View Demo** (`/workspace`)\n\n")
	b.WriteString("## Why Choose ScheduleAI?\n\n")
	b.WriteString("Combining the power of artificial intelligence with intuitive design to revolutionize how you plan your time.\n\n")
	for _, benefit := range Benefits() {
		fmt.Fprintf(&b, "- **%s**: %s\n", benefit.Title, benefit.Description)
	}
	b.WriteString("\n## See Your Perfect Schedule Come to Life\n\n")
	b.WriteString("Watch as AI transforms your requirements into beautifully organized, actionable schedules.\n\n")
	if len(preview) > 0 {
		fmt.Fprintf(&b, "### Today's Schedule (%s)\n\n", ScheduleDateLabel)
		for _, line := range preview {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}
	b.WriteString("**Start Planning Now** (`/signup`)\n")
	return b.String()
}

func PricingMarkdown() string {
	var b strings.Builder
	b.WriteString("# Simple, Transparent Pricing\n\n")
	b.WriteString("Choose the plan that fits your needs. Upgrade or downgrade at any time.\n\n")
	for _, plan := range Plans() {
		heading := plan.Name
		if plan.Popular {
			heading += " (Most Popular)"
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)
		fmt.Fprintf(&b, "**%s** /%s\n\n", plan.Price, plan.Period)
		fmt.Fprintf(&b, "%s\n\n", plan.Description)
		for _, feature := range plan.Features {
			fmt.Fprintf(&b, "- %s\n", feature)
		}
		fmt.Fprintf(&b, "\n**%s** (`%s`)\n\n", plan.CTA, plan.Href)
	}
	b.WriteString("Have questions about our plans? **Contact our team** (`/contact`)\n")
	return b.String()
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en"{{if .Dark}} class="dark"{{end}}>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// ExportHTML renders markdown copy as a standalone page. The dark class on
// the root element carries the visual mode.
func ExportHTML(title, md string, dark bool) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Title string
		Dark  bool
		Body  template.HTML
	}{Title: title, Dark: dark, Body: template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out.String(), nil
}
