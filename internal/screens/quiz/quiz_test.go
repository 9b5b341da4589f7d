package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screens/summary"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T, signCount int) (*QuizScreen, *progress.Tracker) {
	t.Helper()

	kv := store.NewMemKV()
	p := prefs.New(kv)
	if err := p.SetMode(context.Background(), prefs.ModeVideoToText); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	tracker := progress.NewTracker(kv)

	signs := catalog.Signs()[:signCount]
	s := New(signs, catalog.Signs(), false, tracker, p)
	if s.quiz == nil {
		t.Fatal("expected a quiz to be built")
	}
	s.Init()
	return s, tracker
}

// answerCorrectly submits the right option and advances past the delay by
// feeding the scheduled message back in.
func answerCorrectly(t *testing.T, s *QuizScreen) tea.Cmd {
	t.Helper()

	s.choice.Selected = s.choice.CorrectIndex
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a timer command after answering")
	}

	_, cmd = s.Update(advanceMsg{quizID: s.quiz.ID, index: s.quiz.Index()})
	return cmd
}

func TestCorrectAnswersCompleteAndPersist(t *testing.T) {
	s, tracker := testQuizScreen(t, 2)

	total := s.quiz.Len()
	var finishCmd tea.Cmd
	for i := 0; i < total; i++ {
		finishCmd = answerCorrectly(t, s)
	}

	if s.quiz.State() != session.QuizCompleted {
		t.Fatalf("expected completed quiz, got state %d", s.quiz.State())
	}
	if finishCmd == nil {
		t.Fatal("expected a replace command after the last answer")
	}
	msg, ok := finishCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Error("expected the summary screen")
	}

	learned := tracker.Learned(context.Background())
	for _, id := range s.quiz.LearnedIDs() {
		if !learned[id] {
			t.Errorf("sign %d not persisted as learned", id)
		}
	}
}

func TestWrongAnswerRevealsAndRetries(t *testing.T) {
	s, _ := testQuizScreen(t, 1)

	wrong := (s.choice.CorrectIndex + 1) % len(s.choice.Options)
	s.choice.Selected = wrong
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a reveal timer")
	}
	if s.quiz.State() != session.QuizAwaitingReveal {
		t.Fatalf("expected reveal state, got %d", s.quiz.State())
	}

	// Keys during the reveal delay are swallowed.
	index := s.quiz.Index()
	s.Update(specialKey(tea.KeyEnter))
	if s.quiz.State() != session.QuizAwaitingReveal {
		t.Fatal("input must stay locked until the reveal timer fires")
	}

	// The timer only unlocks input; the reveal holds until the learner
	// retries.
	s.Update(revealDoneMsg{quizID: s.quiz.ID, index: index})
	if s.quiz.State() != session.QuizAwaitingReveal {
		t.Fatal("reveal must persist until acknowledged")
	}
	if !s.canRetry {
		t.Fatal("expected retry to be unlocked after the timer")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.quiz.State() != session.QuizInProgress {
		t.Error("expected quiz back in progress after retrying")
	}
	if s.quiz.Index() != index {
		t.Error("expected the same question to be retried")
	}
	if s.choice.Submitted {
		t.Error("expected a fresh selector after the reveal")
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	s, _ := testQuizScreen(t, 2)

	index := s.quiz.Index()
	s.Update(advanceMsg{quizID: "some-other-quiz", index: index})
	if s.quiz.Index() != index {
		t.Error("a timer from another quiz must not advance this one")
	}
}
