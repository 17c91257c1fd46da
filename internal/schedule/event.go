// Package schedule holds the ordered list of events shown for the active day.
package schedule

// ColorTag is a presentation-only category.
type ColorTag string

const (
	ColorPurple  ColorTag = "purple"
	ColorOrange  ColorTag = "orange"
	ColorGreen   ColorTag = "green"
	ColorPrimary ColorTag = "primary"
	ColorPink    ColorTag = "pink"
)

// Event is one item on the day's schedule. StartTime and Duration are display
// strings and are never parsed for arithmetic.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartTime   string   `json:"start_time"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	ColorTag    ColorTag `json:"color_tag"`
}

// SeedEvents returns the fixed demonstration day.
func SeedEvents() []Event {
	return []Event{
		{
			ID:          "1",
			Title:       "Morning Strategy Session",
			StartTime:   "9:00 AM",
			Duration:    "2h",
			Description: "Review quarterly objectives and plan implementation",
			ColorTag:    ColorPurple,
		},
		{
			ID:          "2",
			Title:       "Client Presentation Prep",
			StartTime:   "11:30 AM",
			Duration:    "1h 30m",
			Description: "Finalize slides and practice delivery",
			ColorTag:    ColorOrange,
		},
		{
			ID:          "3",
			Title:       "Lunch & Networking",
			StartTime:   "1:00 PM",
			Duration:    "1h",
			Description: "Industry meetup at downtown cafe",
			ColorTag:    ColorGreen,
		},
		{
			ID:          "4",
			Title:       "Development Sprint",
			StartTime:   "3:00 PM",
			Duration:    "3h",
			Description: "Focus time for feature implementation",
			ColorTag:    ColorPrimary,
		},
		{
			ID:          "5",
			Title:       "Team Retrospective",
			StartTime:   "6:00 PM",
			Duration:    "45m",
			Description: "Weekly team sync and feedback session",
			ColorTag:    ColorPink,
		},
	}
}
