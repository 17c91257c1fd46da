package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sandeepkv93/scheduleai/internal/logging"
	"github.com/sandeepkv93/scheduleai/internal/storage"
)

// DarkModeKey is the persisted setting holding "true" or "false".
const DarkModeKey = "darkMode"

// Preference is the read-only view handed to renderers.
type Preference interface {
	IsDark() bool
	Mode() Mode
}

// Store is the single writer of the theme flag. It keeps the persisted value
// and the Document's mode in step.
type Store struct {
	repo   storage.SettingsRepository
	doc    *Document
	logger *slog.Logger
	isDark bool
}

func NewStore(repo storage.SettingsRepository, doc *Document, logger *slog.Logger) *Store {
	if doc == nil {
		doc = NewPlainDocument()
	}
	if repo == nil {
		repo = storage.NewMemoryRepository()
	}
	return &Store{repo: repo, doc: doc, logger: logging.OrDiscard(logger)}
}

// Load reads the persisted flag and applies it. Missing, unreadable or
// unparseable values mean light mode.
func (s *Store) Load(ctx context.Context) bool {
	s.isDark = false
	raw, err := s.repo.GetSetting(ctx, DarkModeKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		s.logger.Warn("theme preference read failed; using light mode", "err", err)
	default:
		switch raw {
		case "true":
			s.isDark = true
		case "false":
		default:
			s.logger.Warn("theme preference unparseable; using light mode", "value", raw)
		}
	}
	s.doc.Apply(s.isDark)
	s.logger.Debug("theme loaded", "mode", s.doc.Mode())
	return s.isDark
}

// Toggle flips the flag, persists it and applies it. A failed write is
// logged; the in-memory flag and the Document still change.
func (s *Store) Toggle(ctx context.Context) bool {
	s.set(ctx, !s.isDark)
	return s.isDark
}

// ForceDark applies dark mode regardless of the stored value and persists it
// so the stored flag matches what is shown.
func (s *Store) ForceDark(ctx context.Context) {
	s.set(ctx, true)
}

// Reset forgets the stored preference, which reads back as light.
func (s *Store) Reset(ctx context.Context) error {
	err := s.repo.DeleteSetting(ctx, DarkModeKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("reset theme preference: %w", err)
	}
	s.isDark = false
	s.doc.Apply(false)
	return nil
}

func (s *Store) set(ctx context.Context, dark bool) {
	s.isDark = dark
	if err := s.repo.PutSetting(ctx, DarkModeKey, strconv.FormatBool(dark)); err != nil {
		s.logger.Warn("theme preference write failed", "err", err)
	}
	s.doc.Apply(dark)
	s.logger.Info("theme applied", "mode", s.doc.Mode())
}

func (s *Store) IsDark() bool {
	return s.isDark
}

func (s *Store) Mode() Mode {
	return s.doc.Mode()
}

func (s *Store) Document() *Document {
	return s.doc
}
