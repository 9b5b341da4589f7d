// Package prefs provides typed access to learner preferences. All reads
// degrade to documented defaults on missing or malformed values so that a
// broken preference never breaks a session.
package prefs

import (
	"context"
	"strconv"

	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/store"
)

// LearningMode selects the direction of quiz questions.
type LearningMode string

const (
	ModeVideoToText LearningMode = "video-to-text"
	ModeTextToVideo LearningMode = "text-to-video"
	ModeBoth        LearningMode = "both"
)

// Defaults applied when a preference is absent or unparsable.
const (
	DefaultLearnCount  = 5
	DefaultRepeatCount = 5
	DefaultAutoPlay    = true
	DefaultMode        = ModeBoth
)

// CountOptions are the batch sizes offered in settings.
var CountOptions = []int{3, 5, 7, 10}

// Prefs reads and writes learner preferences through a key-value store.
type Prefs struct {
	kv store.KV
}

// New creates a Prefs backed by kv.
func New(kv store.KV) *Prefs {
	return &Prefs{kv: kv}
}

// Mode returns the configured learning mode.
func (p *Prefs) Mode(ctx context.Context) LearningMode {
	v, ok, err := p.kv.Get(ctx, store.LearningModeKey)
	if err != nil || !ok {
		return DefaultMode
	}
	switch LearningMode(v) {
	case ModeVideoToText, ModeTextToVideo, ModeBoth:
		return LearningMode(v)
	}
	return DefaultMode
}

// SetMode persists the learning mode.
func (p *Prefs) SetMode(ctx context.Context, mode LearningMode) error {
	return p.kv.Set(ctx, store.LearningModeKey, string(mode))
}

// LearnCount returns how many new signs a learning batch holds.
func (p *Prefs) LearnCount(ctx context.Context) int {
	return p.count(ctx, store.LearnCountKey, DefaultLearnCount)
}

// SetLearnCount persists the learning batch size.
func (p *Prefs) SetLearnCount(ctx context.Context, n int) error {
	return p.kv.Set(ctx, store.LearnCountKey, strconv.Itoa(n))
}

// RepeatCount returns how many learned signs a review session samples.
func (p *Prefs) RepeatCount(ctx context.Context) int {
	return p.count(ctx, store.RepeatCountKey, DefaultRepeatCount)
}

// SetRepeatCount persists the review sample size.
func (p *Prefs) SetRepeatCount(ctx context.Context, n int) error {
	return p.kv.Set(ctx, store.RepeatCountKey, strconv.Itoa(n))
}

// AutoPlay reports whether sign videos start automatically.
func (p *Prefs) AutoPlay(ctx context.Context) bool {
	v, ok, err := p.kv.Get(ctx, store.AutoPlayKey)
	if err != nil || !ok {
		return DefaultAutoPlay
	}
	return v == "true"
}

// SetAutoPlay persists the autoplay flag as "true"/"false".
func (p *Prefs) SetAutoPlay(ctx context.Context, on bool) error {
	return p.kv.Set(ctx, store.AutoPlayKey, strconv.FormatBool(on))
}

// Language returns the interface language code.
func (p *Prefs) Language(ctx context.Context) string {
	v, ok, err := p.kv.Get(ctx, store.LanguageKey)
	if err != nil || !ok {
		return locale.DefaultLanguage
	}
	for _, lang := range locale.Available() {
		if v == lang {
			return v
		}
	}
	return locale.DefaultLanguage
}

// SetLanguage persists the interface language code.
func (p *Prefs) SetLanguage(ctx context.Context, lang string) error {
	return p.kv.Set(ctx, store.LanguageKey, lang)
}

func (p *Prefs) count(ctx context.Context, key string, def int) int {
	v, ok, err := p.kv.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
