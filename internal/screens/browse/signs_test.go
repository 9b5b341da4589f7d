package browse

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screens/learn"
	"github.com/liisbet/viipekeel/internal/screens/quiz"
	"github.com/liisbet/viipekeel/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSignList(t *testing.T) (*SignListScreen, *progress.Tracker, int) {
	t.Helper()
	kv := store.NewMemKV()
	p := prefs.New(kv)
	tracker := progress.NewTracker(kv)
	catID := catalog.Categories()[0].ID
	return NewSignList(catID, tracker, p), tracker, catID
}

func TestLearnKeyStartsCategoryBatch(t *testing.T) {
	s, _, _ := testSignList(t)

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*learn.LearnScreen); !ok {
		t.Error("expected the learn screen")
	}
}

func TestLearnKeyIgnoredWhenCategoryComplete(t *testing.T) {
	s, tracker, catID := testSignList(t)

	var ids []int
	for _, sign := range catalog.ByCategory(catID) {
		ids = append(ids, sign.ID)
	}
	tracker.MarkLearned(context.Background(), ids)

	if _, cmd := s.Update(keyPress('n')); cmd != nil {
		t.Error("a fully learned category has nothing left to study")
	}
}

func TestReviewKeyNeedsLearnedSigns(t *testing.T) {
	s, tracker, catID := testSignList(t)

	if _, cmd := s.Update(keyPress('r')); cmd != nil {
		t.Error("review with nothing learned should be a no-op")
	}

	first := catalog.ByCategory(catID)[0]
	tracker.MarkLearned(context.Background(), []int{first.ID})

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Error("expected a review quiz")
	}
}
