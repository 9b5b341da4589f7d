package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liisbet/viipekeel/internal/store"
)

func TestDefaults(t *testing.T) {
	p := New(store.NewMemKV())
	ctx := context.Background()

	assert.Equal(t, ModeBoth, p.Mode(ctx))
	assert.Equal(t, DefaultLearnCount, p.LearnCount(ctx))
	assert.Equal(t, DefaultRepeatCount, p.RepeatCount(ctx))
	assert.True(t, p.AutoPlay(ctx))
}

func TestRoundTrip(t *testing.T) {
	p := New(store.NewMemKV())
	ctx := context.Background()

	require.NoError(t, p.SetMode(ctx, ModeVideoToText))
	require.NoError(t, p.SetLearnCount(ctx, 7))
	require.NoError(t, p.SetRepeatCount(ctx, 10))
	require.NoError(t, p.SetAutoPlay(ctx, false))

	assert.Equal(t, ModeVideoToText, p.Mode(ctx))
	assert.Equal(t, 7, p.LearnCount(ctx))
	assert.Equal(t, 10, p.RepeatCount(ctx))
	assert.False(t, p.AutoPlay(ctx))
}

func TestLanguage(t *testing.T) {
	kv := store.NewMemKV()
	p := New(kv)
	ctx := context.Background()

	assert.Equal(t, "en", p.Language(ctx))

	require.NoError(t, p.SetLanguage(ctx, "et"))
	assert.Equal(t, "et", p.Language(ctx))

	// Unknown codes read back as the default.
	require.NoError(t, kv.Set(ctx, store.LanguageKey, "xx"))
	assert.Equal(t, "en", p.Language(ctx))
}

func TestMalformedValuesFallBack(t *testing.T) {
	kv := store.NewMemKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.LearningModeKey, "sideways"))
	require.NoError(t, kv.Set(ctx, store.LearnCountKey, "many"))
	require.NoError(t, kv.Set(ctx, store.RepeatCountKey, "-3"))
	require.NoError(t, kv.Set(ctx, store.AutoPlayKey, "yes"))

	p := New(kv)
	assert.Equal(t, ModeBoth, p.Mode(ctx))
	assert.Equal(t, DefaultLearnCount, p.LearnCount(ctx))
	assert.Equal(t, DefaultRepeatCount, p.RepeatCount(ctx))
	// Anything but the literal "true" reads as false.
	assert.False(t, p.AutoPlay(ctx))
}
