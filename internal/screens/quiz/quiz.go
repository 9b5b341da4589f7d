// Package quiz drives a multiple-choice recognition session. The same
// screen serves a learning quiz over a fresh batch and a review quiz over
// already learned signs; on completion the answered signs are folded into
// the learned set.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/screens/summary"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/ui/components"
	"github.com/liisbet/viipekeel/internal/ui/layout"
)

// advanceMsg fires after the correct-answer delay. Quiz and question index
// identify the question it belongs to so a stale timer is ignored.
type advanceMsg struct {
	quizID string
	index  int
}

// revealDoneMsg fires after the wrong-answer reveal delay. It unlocks
// input; the reveal itself stays up until the learner retries.
type revealDoneMsg struct {
	quizID string
	index  int
}

// QuizScreen runs one quiz from start to summary.
type QuizScreen struct {
	quiz    *session.Quiz
	tracker *progress.Tracker
	lang    string
	batch   int // size of the sign batch, reported on the summary screen

	choice   components.MultiChoice
	canRetry bool // reveal delay has passed, waiting for the learner
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New builds a quiz over signs, drawing wrong options from pool. Review
// quizzes replay learned signs; their completion still writes the learned
// set, which is a no-op union.
func New(signs, pool []catalog.Sign, review bool, tracker *progress.Tracker, p *prefs.Prefs) *QuizScreen {
	ctx := context.Background()
	q, err := session.NewQuiz(signs, pool, p.Mode(ctx), nil)
	s := &QuizScreen{
		tracker: tracker,
		lang:    p.Language(ctx),
		batch:   len(signs),
	}
	if err != nil {
		s.errMsg = "Nothing to practice yet."
		return s
	}
	q.Review = review
	s.quiz = q
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.quiz == nil {
		return nil
	}
	s.quiz.Start()
	s.rebuildChoice()
	return nil
}

func (s *QuizScreen) Title() string {
	if s.quiz != nil && s.quiz.Review {
		return "Review"
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quiz != nil && s.quiz.State() == session.QuizAwaitingReveal {
		if s.canRetry {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Try again"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.handleAdvance(msg)
	case revealDoneMsg:
		return s.handleRevealDone(msg)
	case tea.KeyMsg:
		if s.quiz == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if s.quiz.State() == session.QuizAwaitingReveal {
			if s.canRetry && (msg.String() == "enter" || msg.String() == " ") {
				s.canRetry = false
				s.quiz.AcknowledgeAnswer()
				s.rebuildChoice()
			}
			return s, nil
		}
		if s.quiz.State() != session.QuizInProgress {
			// A feedback delay is running; input stays locked.
			return s, nil
		}
		wasSubmitted := s.choice.Submitted
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if !wasSubmitted && s.choice.Submitted {
			return s, s.submit()
		}
		return s, cmd
	}
	return s, nil
}

// submit hands the chosen option to the engine and schedules the timed
// transition the outcome calls for.
func (s *QuizScreen) submit() tea.Cmd {
	options := s.quiz.Options()
	chosen := options[s.choice.ChosenIndex]
	correct := s.quiz.SubmitAnswer(chosen)

	id, index := s.quiz.ID, s.quiz.Index()
	if correct {
		return tea.Tick(session.CorrectAdvanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{quizID: id, index: index}
		})
	}
	return tea.Tick(session.RevealDelay, func(time.Time) tea.Msg {
		return revealDoneMsg{quizID: id, index: index}
	})
}

func (s *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil || msg.quizID != s.quiz.ID || msg.index != s.quiz.Index() {
		return s, nil
	}
	if completed := s.quiz.Advance(); completed {
		return s, s.finish()
	}
	s.rebuildChoice()
	return s, nil
}

func (s *QuizScreen) handleRevealDone(msg revealDoneMsg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil || msg.quizID != s.quiz.ID || msg.index != s.quiz.Index() {
		return s, nil
	}
	s.canRetry = true
	return s, nil
}

// finish persists the learned signs and swaps in the results screen.
func (s *QuizScreen) finish() tea.Cmd {
	newly := 0
	if s.tracker != nil {
		ctx := context.Background()
		before := s.tracker.Learned(ctx)
		ids := s.quiz.LearnedIDs()
		for _, id := range ids {
			if !before[id] {
				newly++
			}
		}
		if !s.tracker.MarkLearned(ctx, ids) {
			newly = 0
		}
	}
	sum := s.quiz.Summary()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, newly)}
	}
}

// rebuildChoice constructs the selector for the current question.
func (s *QuizScreen) rebuildChoice() {
	q, ok := s.quiz.Current()
	if !ok {
		return
	}
	options := s.quiz.Options()

	labels := make([]string, len(options))
	correctIndex := 0
	for i, opt := range options {
		loc := locale.Localize(opt, s.lang)
		if q.Type == session.VideoToText {
			labels[i] = loc.Word
		} else {
			labels[i] = loc.Description
		}
		if opt.ID == q.Sign.ID {
			correctIndex = i
		}
	}

	s.choice = components.NewMultiChoice(s.prompt(q), labels, correctIndex)
}

func (s *QuizScreen) prompt(q session.Question) string {
	loc := locale.Localize(q.Sign, s.lang)
	if q.Type == session.VideoToText {
		return "Which word matches this sign?\n▶ " + loc.VideoURL
	}
	return "How do you sign \"" + loc.Word + "\"?"
}
