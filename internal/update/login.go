package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

// handleLoginKey drives the login stub. Submitting only records the attempt.
func (m Model) handleLoginKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "tab", "down":
		m.focusLogin(nextLoginField(m.Login.Focus))
		return m
	case "shift+tab", "up":
		m.focusLogin(prevLoginField(m.Login.Focus))
		return m
	case "esc":
		m.blurLogin()
		return m
	case "ctrl+r":
		m.Login.ShowPassword = !m.Login.ShowPassword
		if m.Login.ShowPassword {
			m.passwordInput.EchoMode = textinput.EchoNormal
		} else {
			m.passwordInput.EchoMode = textinput.EchoPassword
		}
		return m
	case "enter":
		return m.submitLogin()
	}

	if m.Login.Focus == LoginFieldNone {
		return m
	}
	input := &m.emailInput
	if m.Login.Focus == LoginFieldPassword {
		input = &m.passwordInput
	}
	if msg.Type == tea.KeyRunes {
		input.SetValue(input.Value() + string(msg.Runes))
		input.CursorEnd()
		return m
	}
	updated, _ := input.Update(msg)
	*input = updated
	return m
}

func (m Model) submitLogin() Model {
	email := strings.TrimSpace(m.emailInput.Value())
	if email == "" || m.passwordInput.Value() == "" {
		m.Login.Message = "email and password are required"
		return m
	}
	m.Login.Attempts++
	m.logger.Info("login attempt", "email", email)
	m.Login.Message = "login attempt recorded for " + email
	m.Status = StatusBar{Text: "login attempt recorded"}
	return m
}

func (m *Model) focusLogin(field LoginField) {
	m.Login.Focus = field
	m.emailInput.Blur()
	m.passwordInput.Blur()
	switch field {
	case LoginFieldEmail:
		m.emailInput.Focus()
	case LoginFieldPassword:
		m.passwordInput.Focus()
	}
}

func (m *Model) blurLogin() {
	m.focusLogin(LoginFieldNone)
}

func nextLoginField(f LoginField) LoginField {
	if f == LoginFieldEmail {
		return LoginFieldPassword
	}
	return LoginFieldEmail
}

func prevLoginField(f LoginField) LoginField {
	if f == LoginFieldPassword {
		return LoginFieldEmail
	}
	return LoginFieldPassword
}

func (m Model) renderLoginView() string {
	return views.RenderLogin(m.styles, views.LoginData{
		EmailView:    m.emailInput.View(),
		PasswordView: m.passwordInput.View(),
		ShowPassword: m.Login.ShowPassword,
		Message:      m.Login.Message,
	})
}
