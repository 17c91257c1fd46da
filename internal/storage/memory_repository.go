package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps settings for the lifetime of the process only.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string]Setting
	// FailWrites makes PutSetting and DeleteSetting return an error.
	FailWrites bool
}

var errWriteRefused = errors.New("storage: write refused")

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string]Setting)}
}

func (r *MemoryRepository) GetSetting(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return item.Value, nil
}

func (r *MemoryRepository) PutSetting(_ context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage: empty setting key")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWrites {
		return errWriteRefused
	}
	r.values[key] = Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return nil
}

func (r *MemoryRepository) DeleteSetting(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWrites {
		return errWriteRefused
	}
	if _, ok := r.values[key]; !ok {
		return ErrNotFound
	}
	delete(r.values, key)
	return nil
}

func (r *MemoryRepository) ListSettings(_ context.Context, filter SettingListFilter) ([]Setting, error) {
	r.mu.RLock()
	out := make([]Setting, 0, len(r.values))
	for key, item := range r.values {
		if filter.Prefix != "" && !strings.HasPrefix(key, filter.Prefix) {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []Setting{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}
