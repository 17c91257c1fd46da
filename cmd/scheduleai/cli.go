package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/sandeepkv93/scheduleai/internal/config"
	"github.com/sandeepkv93/scheduleai/internal/logging"
	"github.com/sandeepkv93/scheduleai/internal/router"
	"github.com/sandeepkv93/scheduleai/internal/schedule"
	"github.com/sandeepkv93/scheduleai/internal/storage"
	"github.com/sandeepkv93/scheduleai/internal/theme"
	"github.com/sandeepkv93/scheduleai/internal/update"
	"github.com/sandeepkv93/scheduleai/internal/views"
)

// ProgramRunner runs the interactive model; tests swap it out.
type ProgramRunner func(m tea.Model) error

// session is what every command gets after the Before hook: resolved config,
// a logger and the settings store.
type session struct {
	cfg     config.RuntimeConfig
	logger  *slog.Logger
	repo    storage.SettingsRepository
	closers []io.Closer
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
	s.closers = nil
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(run ProgramRunner) *cli.App {
	sess := &session{}
	app := &cli.App{
		Name:    "scheduleai",
		Usage:   "AI schedule planner demo",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"SCHEDULEAI_CONFIG"}, Usage: "TOML or YAML config file"},
			&cli.StringFlag{Name: "start", Usage: "Path to open first (/, /workspace, /pricing, /login)"},
			&cli.BoolFlag{Name: "ephemeral", Usage: "Keep settings in memory only"},
			&cli.BoolFlag{Name: "force-dark", Usage: "Start in dark mode and remember it"},
			&cli.StringFlag{Name: "state-db", Usage: "SQLite settings database path"},
			&cli.StringFlag{Name: "log-file", Usage: "Log file path (empty disables logging)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug|info|warn|error"},
		},
		Before: func(c *cli.Context) error {
			return sess.open(c)
		},
		After: func(_ *cli.Context) error {
			sess.Close()
			return nil
		},
		Action: func(c *cli.Context) error {
			return runInteractive(c.Context, sess, run)
		},
		Commands: []*cli.Command{
			themeCmd(sess),
			eventsCmd(sess),
			renderCmd(sess),
			settingsCmd(sess),
		},
	}
	// Errors are returned to the caller, not turned into os.Exit.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func (s *session) open(c *cli.Context) error {
	cfg, err := config.LoadFile(c.String("config"), config.DefaultRuntimeConfig())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg = config.RuntimeConfigFromEnv(cfg)
	if c.IsSet("start") {
		cfg.StartPath = c.String("start")
	}
	if c.IsSet("ephemeral") {
		cfg.Ephemeral = c.Bool("ephemeral")
	}
	if c.IsSet("force-dark") {
		cfg.ForceDark = c.Bool("force-dark")
	}
	if c.IsSet("state-db") {
		cfg.StateDBPath = c.String("state-db")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger, logCloser, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	s.closers = append(s.closers, logCloser)

	if cfg.Ephemeral {
		s.repo = storage.NewMemoryRepository()
	} else {
		repo, err := storage.OpenSQLite(cfg.StateDBPath)
		if err != nil {
			s.Close()
			return cli.Exit(err.Error(), 1)
		}
		s.repo = repo
		s.closers = append(s.closers, repo)
	}
	s.cfg = cfg
	s.logger = logger
	logger.Debug("session opened", "state_db", cfg.StateDBPath, "ephemeral", cfg.Ephemeral)
	return nil
}

// themeStore loads the persisted preference into doc, applying the startup
// override when configured.
func (s *session) themeStore(ctx context.Context, doc *theme.Document) *theme.Store {
	store := theme.NewStore(s.repo, doc, s.logger)
	store.Load(ctx)
	if s.cfg.ForceDark {
		store.ForceDark(ctx)
	}
	return store
}

func runInteractive(ctx context.Context, sess *session, run ProgramRunner) error {
	if run == nil {
		return cli.Exit("no program runner configured", 1)
	}
	store := sess.themeStore(ctx, theme.NewDocument(os.Stdout))
	m := update.NewModelWithConfig(sess.cfg, update.Dependencies{
		Context: ctx,
		Theme:   store,
		Logger:  sess.logger,
	})
	if err := run(m); err != nil {
		return cli.Exit(fmt.Sprintf("scheduleai failed: %v", err), 1)
	}
	return nil
}

func themeCmd(sess *session) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or change the light/dark preference",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current mode",
				Action: func(c *cli.Context) error {
					store := sess.themeStore(c.Context, theme.NewPlainDocument())
					_, err := fmt.Fprintln(c.App.Writer, store.Mode())
					return err
				},
			},
			{
				Name:  "toggle",
				Usage: "Flip the mode and persist it",
				Action: func(c *cli.Context) error {
					store := sess.themeStore(c.Context, theme.NewPlainDocument())
					store.Toggle(c.Context)
					_, err := fmt.Fprintln(c.App.Writer, store.Mode())
					return err
				},
			},
			{
				Name:  "reset",
				Usage: "Forget the stored preference",
				Action: func(c *cli.Context) error {
					store := theme.NewStore(sess.repo, theme.NewPlainDocument(), sess.logger)
					if err := store.Reset(c.Context); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					_, err := fmt.Fprintln(c.App.Writer, store.Mode())
					return err
				},
			},
		},
	}
}

func eventsCmd(_ *session) *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Print the demo schedule",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print as JSON"},
		},
		Action: func(c *cli.Context) error {
			events := schedule.NewModel(schedule.NewULIDSource()).List()
			if c.Bool("json") {
				return outputJSON(c.App.Writer, events)
			}
			for _, ev := range events {
				if _, err := fmt.Fprintf(c.App.Writer, "%-9s %-7s %s: %s\n", ev.StartTime, ev.Duration, ev.Title, ev.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func renderCmd(sess *session) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a page once and exit",
		ArgsUsage: "[--html] [--width N] <path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "Export the landing or pricing copy as HTML"},
			&cli.IntFlag{Name: "width", Value: 96, Usage: "Render width in columns"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return cli.Exit("usage: render [--html] [--width N] <path>; flags go before the path", 1)
			}
			path := router.PathHome
			if c.NArg() > 0 {
				path = c.Args().First()
			}
			route := router.Resolve(path)
			store := sess.themeStore(c.Context, theme.NewPlainDocument())

			if c.Bool("html") {
				out, err := exportPage(route, store.IsDark())
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				_, err = io.WriteString(c.App.Writer, out)
				return err
			}

			cfg := sess.cfg
			cfg.StartPath = route.Path
			m := update.NewModelWithConfig(cfg, update.Dependencies{
				Context: c.Context,
				Theme:   store,
				Logger:  sess.logger,
			})
			updated, _ := m.Update(tea.WindowSizeMsg{Width: c.Int("width"), Height: 60})
			_, err := fmt.Fprintln(c.App.Writer, updated.View())
			return err
		},
	}
}

func settingsCmd(sess *session) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "List stored settings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prefix", Usage: "Only keys starting with prefix"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum rows (0 for all)"},
		},
		Action: func(c *cli.Context) error {
			rows, err := sess.repo.ListSettings(c.Context, storage.SettingListFilter{
				Prefix: c.String("prefix"),
				Limit:  c.Int("limit"),
			})
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(c.App.Writer, "%s=%s\n", row.Key, row.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportPage(route router.Route, dark bool) (string, error) {
	switch route.Page {
	case router.PageLanding:
		md := views.LandingMarkdown(update.PreviewLines(schedule.SeedEvents()))
		return views.ExportHTML("ScheduleAI", md, dark)
	case router.PagePricing:
		return views.ExportHTML("ScheduleAI Pricing", views.PricingMarkdown(), dark)
	default:
		return "", fmt.Errorf("html export supports %s and %s, not %s", router.PathHome, router.PathPricing, strings.TrimSpace(route.Path))
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
