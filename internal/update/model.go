package update

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/scheduleai/internal/config"
	"github.com/sandeepkv93/scheduleai/internal/generation"
	"github.com/sandeepkv93/scheduleai/internal/logging"
	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
	"github.com/sandeepkv93/scheduleai/internal/theme"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home      string
	Workspace string
	Pricing   string
	Login     string
	Theme     string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type LoginField int

const (
	LoginFieldNone LoginField = iota
	LoginFieldEmail
	LoginFieldPassword
)

type LoginState struct {
	Focus        LoginField
	ShowPassword bool
	Attempts     int
	Message      string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Dependencies are the long-lived collaborators the model drives. Zero values
// get in-memory defaults.
type Dependencies struct {
	Context   context.Context
	Theme     *theme.Store
	Events    *schedule.Model
	Generator generation.Generator
	Logger    *slog.Logger
}

type Model struct {
	Route         router.Route
	Workspace     generation.Controller
	Events        *schedule.Model
	ApplyPolicy   schedule.ApplyPolicy
	Login         LoginState
	Palette       CommandPaletteState
	HelpVisible   bool
	PromptFocused bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx        context.Context
	themeStore *theme.Store
	logger     *slog.Logger
	styles     views.Styles
	width      int
	height     int

	promptArea    textarea.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	commandInput  textinput.Model
	genSpinner    spinner.Model
	helpModel     help.Model
	pageViewport  viewport.Model
}

type NavigateMsg struct {
	Path string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ToggleThemeMsg struct{}

// GenerationDoneMsg carries a finished task back onto the event loop.
type GenerationDoneMsg struct {
	Result generation.Result
}

func NewModel() Model {
	return NewModelWithConfig(config.DefaultRuntimeConfig(), Dependencies{})
}

func NewModelWithConfig(cfg config.RuntimeConfig, deps Dependencies) Model {
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.OrDiscard(deps.Logger)
	store := deps.Theme
	if store == nil {
		store = theme.NewStore(nil, nil, logger)
	}
	events := deps.Events
	if events == nil {
		events = schedule.NewModel(schedule.NewULIDSource())
	}
	gen := deps.Generator
	if gen == nil {
		delay := cfg.GenerationDelay.Duration
		if delay <= 0 {
			delay = config.DefaultGenerationDelay
		}
		gen = generation.SimulatedGenerator{Delay: delay}
	}
	policy, err := schedule.ParseApplyPolicy(cfg.ApplyPolicy)
	if err != nil {
		logger.Warn("unknown apply policy; generated events are discarded", "policy", cfg.ApplyPolicy)
		policy = schedule.ApplyNone
	}

	m := Model{
		Route:       router.Resolve(router.PathHome),
		Workspace:   generation.NewController(gen, logger),
		Events:      events,
		ApplyPolicy: policy,
		Keys: GlobalKeyMap{
			Home:      "1",
			Workspace: "2",
			Pricing:   "3",
			Login:     "4",
			Theme:     "t",
			Help:      "?",
			Quit:      "q",
		},
		ctx:        ctx,
		themeStore: store,
		logger:     logger,
		width:      96,
		height:     32,
	}
	m.styles = views.NewStyles(store.Document())
	m.initBubbleComponents()
	start := strings.TrimSpace(cfg.StartPath)
	if start == "" {
		start = router.PathHome
	}
	m.navigate(start)
	return m
}

func (m *Model) initBubbleComponents() {
	m.promptArea = textarea.New()
	m.promptArea.Placeholder = "Type your request here... (e.g., 'Schedule a productive Monday with 2 hours of deep work, team meetings, and time for lunch')"
	m.promptArea.ShowLineNumbers = false
	m.promptArea.CharLimit = 2000
	m.promptArea.SetWidth(m.width - 4)
	m.promptArea.SetHeight(3)

	m.emailInput = textinput.New()
	m.emailInput.Prompt = "> "
	m.emailInput.Placeholder = "Enter your email"
	m.emailInput.CharLimit = 256
	m.emailInput.Width = 40

	m.passwordInput = textinput.New()
	m.passwordInput.Prompt = "> "
	m.passwordInput.Placeholder = "Enter your password"
	m.passwordInput.CharLimit = 256
	m.passwordInput.Width = 40
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.EchoCharacter = '•'

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.genSpinner = spinner.New()
	m.genSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.pageViewport = viewport.New(m.width, m.height-6)
}

// Preference is the read-only theme view handed to renderers.
func (m Model) Preference() theme.Preference {
	return m.themeStore
}

// Prompt is the workspace draft as the controller sees it.
func (m Model) Prompt() string {
	return m.Workspace.Prompt()
}

// EmailValue and PasswordValue expose the login inputs for tests.
func (m Model) EmailValue() string {
	return m.emailInput.Value()
}

func (m Model) PasswordValue() string {
	return m.passwordInput.Value()
}
