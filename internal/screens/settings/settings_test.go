package settings

import (
	"context"
	"testing"

	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/store"
)

func TestCyclePersists(t *testing.T) {
	kv := store.NewMemKV()
	p := prefs.New(kv)
	s := New(p)
	ctx := context.Background()

	// First row is the quiz direction, defaulting to "both".
	s.selected = 0
	s.cycle(1)
	if got := p.Mode(ctx); got != prefs.ModeVideoToText {
		t.Errorf("expected mode %q after one step, got %q", prefs.ModeVideoToText, got)
	}

	s.cycle(-1)
	if got := p.Mode(ctx); got != prefs.ModeBoth {
		t.Errorf("expected mode %q after stepping back, got %q", prefs.ModeBoth, got)
	}
}

func TestCycleWrapsAround(t *testing.T) {
	p := prefs.New(store.NewMemKV())
	s := New(p)
	ctx := context.Background()

	// Row 1 is the learn count over prefs.CountOptions.
	s.selected = 1
	for range prefs.CountOptions {
		s.cycle(1)
	}
	if got := p.LearnCount(ctx); got != prefs.DefaultLearnCount {
		t.Errorf("expected full cycle back to %d, got %d", prefs.DefaultLearnCount, got)
	}
}

func TestCycleBackwardFromDefault(t *testing.T) {
	p := prefs.New(store.NewMemKV())
	s := New(p)
	ctx := context.Background()

	// Language row: en -> ru when stepping backward from the first value.
	s.selected = len(s.rows) - 1
	s.cycle(-1)
	if got := p.Language(ctx); got != "ru" {
		t.Errorf("expected language ru, got %q", got)
	}
}
