package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

func (m Model) renderNav() string {
	items := router.NavItems()
	links := make([]views.NavLinkData, 0, len(items))
	for _, item := range items {
		links = append(links, views.NavLinkData{Label: item.Label, Key: item.Key, Active: item.Active(m.Route.Path)})
	}
	return views.RenderNav(m.styles, views.NavData{
		Links:           links,
		ShowAuthActions: router.ShowAuthActions(m.Route.Path),
		Mode:            string(m.Preference().Mode()),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
