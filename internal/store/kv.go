package store

import (
	"context"
	"sync"
)

// Storage keys. The learned/favorite/notes keys carry the app-name prefix
// the mobile releases used, so a migrated database keeps working.
const (
	LearnedSignsKey  = "@estonian_sign_app:learned_signs"
	FavoriteSignsKey = "@estonian_sign_app:favorite_signs"
	CustomNotesKey   = "@estonian_sign_app:custom_tips"

	LearningModeKey = "learningMode"
	LearnCountKey   = "learnSignsCount"
	RepeatCountKey  = "repeatSignsCount"
	AutoPlayKey     = "autoPlayVideos"
	LanguageKey     = "appLanguage"
)

// KV is the string key-value contract the engine persists through. Reads
// report absence via ok=false; errors are reserved for I/O failures.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemKV is an in-memory KV used by tests and by ephemeral sessions.
type MemKV struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ KV = (*MemKV)(nil)

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

func (m *MemKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
