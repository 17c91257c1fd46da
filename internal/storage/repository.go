package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// SettingsRepository is the device-local key/value store backing user
// preferences such as the dark mode flag.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	ListSettings(ctx context.Context, filter SettingListFilter) ([]Setting, error)
}
