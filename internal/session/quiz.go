package session

import (
	"errors"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/prefs"
)

// ErrEmptySession is returned when a session is built from no signs.
var ErrEmptySession = errors.New("session: no signs to practice")

// OptionCount is the number of choices presented per quiz question.
const OptionCount = 4

// UI pacing for quiz feedback. The engine never sleeps; screens schedule
// these and must drop the timers if the session is torn down first.
const (
	// CorrectAdvanceDelay is how long a correct answer stays highlighted
	// before the quiz moves on.
	CorrectAdvanceDelay = 1200 * time.Millisecond
	// RevealDelay is how long a wrong answer stays highlighted before the
	// correct answer is revealed.
	RevealDelay = 1500 * time.Millisecond
)

// QuestionType is the direction a quiz question is asked in.
type QuestionType int

const (
	// VideoToText shows the sign video and asks for the word.
	VideoToText QuestionType = iota
	// TextToVideo shows the word and asks for the matching video.
	TextToVideo
)

func (qt QuestionType) String() string {
	if qt == TextToVideo {
		return "text-to-video"
	}
	return "video-to-text"
}

// Question pairs a sign with the direction it is asked in.
type Question struct {
	Sign catalog.Sign
	Type QuestionType
}

// BuildQuizSequence expands signs into a shuffled question list. Every sign
// appears exactly twice: in "both" mode once per direction, in a single mode
// twice with the same direction. The doubling in single modes matches the
// released app and is deliberate — a quiz always drills each sign twice.
func BuildQuizSequence(signs []catalog.Sign, mode prefs.LearningMode, rng *rand.Rand) []Question {
	questions := make([]Question, 0, 2*len(signs))
	for _, s := range signs {
		switch mode {
		case prefs.ModeVideoToText:
			questions = append(questions, Question{Sign: s, Type: VideoToText}, Question{Sign: s, Type: VideoToText})
		case prefs.ModeTextToVideo:
			questions = append(questions, Question{Sign: s, Type: TextToVideo}, Question{Sign: s, Type: TextToVideo})
		default:
			questions = append(questions, Question{Sign: s, Type: VideoToText}, Question{Sign: s, Type: TextToVideo})
		}
	}
	Shuffle(questions, rng)
	return questions
}

// GenerateOptions builds a randomized option set of optionCount signs that
// contains correct exactly once, plus distractors drawn without replacement
// from pool. When the pool is too small the remaining slots repeat the
// correct answer instead of failing; tiny categories produce questions with
// duplicate right answers, which the product treats as acceptable.
func GenerateOptions(correct catalog.Sign, pool []catalog.Sign, optionCount int, rng *rand.Rand) []catalog.Sign {
	options := []catalog.Sign{correct}

	var others []catalog.Sign
	for _, s := range pool {
		if s.ID != correct.ID {
			others = append(others, s)
		}
	}
	options = append(options, Sample(others, optionCount-1, rng)...)

	for len(options) < optionCount {
		options = append(options, correct)
	}

	Shuffle(options, rng)
	return options
}

// QuizState is the quiz session's lifecycle state.
type QuizState int

const (
	QuizNotStarted QuizState = iota
	QuizInProgress
	// QuizAwaitingReveal is entered after a wrong answer: the correct
	// answer is shown until the learner acknowledges it.
	QuizAwaitingReveal
	QuizCompleted
)

// Quiz drives a multiple-choice session over a batch of signs. It is a plain
// synchronous state machine; the UI owns all timing.
type Quiz struct {
	ID     string
	Review bool

	questions []Question
	pool      []catalog.Sign
	rng       *rand.Rand

	state   QuizState
	index   int
	options []catalog.Sign

	Score    int
	Mistakes int

	startedAt time.Time
	duration  time.Duration
	now       func() time.Time
}

// NewQuiz composes a quiz over signs, drawing distractors from pool
// (normally the whole category). Returns ErrEmptySession for an empty batch.
func NewQuiz(signs, pool []catalog.Sign, mode prefs.LearningMode, rng *rand.Rand) (*Quiz, error) {
	if len(signs) == 0 {
		return nil, ErrEmptySession
	}
	return &Quiz{
		ID:        uuid.NewString(),
		questions: BuildQuizSequence(signs, mode, rng),
		pool:      pool,
		rng:       rng,
		state:     QuizNotStarted,
		now:       time.Now,
	}, nil
}

// Start begins the session: index and counters reset, the clock starts, and
// options for the first question are generated.
func (q *Quiz) Start() {
	if q.state != QuizNotStarted {
		return
	}
	q.index = 0
	q.Score = 0
	q.Mistakes = 0
	q.startedAt = q.now()
	q.options = GenerateOptions(q.questions[q.index].Sign, q.pool, OptionCount, q.rng)
	q.state = QuizInProgress
}

// State returns the current lifecycle state.
func (q *Quiz) State() QuizState { return q.state }

// Len returns the number of questions in the sequence.
func (q *Quiz) Len() int { return len(q.questions) }

// Index returns the zero-based position of the current question.
func (q *Quiz) Index() int { return q.index }

// Current returns the active question. ok is false outside an active session.
func (q *Quiz) Current() (Question, bool) {
	if q.state != QuizInProgress && q.state != QuizAwaitingReveal {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Options returns the option set for the current question.
func (q *Quiz) Options() []catalog.Sign { return q.options }

// SubmitAnswer grades a selection. A correct answer increments the score and
// leaves the quiz in progress — the caller advances after
// CorrectAdvanceDelay. A wrong answer increments mistakes and moves to
// QuizAwaitingReveal; the same question is retried after acknowledgement.
func (q *Quiz) SubmitAnswer(selected catalog.Sign) (correct bool) {
	if q.state != QuizInProgress {
		return false
	}
	if selected.ID == q.questions[q.index].Sign.ID {
		q.Score++
		return true
	}
	q.Mistakes++
	q.state = QuizAwaitingReveal
	return false
}

// AcknowledgeAnswer leaves the reveal state and re-arms the same question
// with a freshly drawn option set.
func (q *Quiz) AcknowledgeAnswer() {
	if q.state != QuizAwaitingReveal {
		return
	}
	q.options = GenerateOptions(q.questions[q.index].Sign, q.pool, OptionCount, q.rng)
	q.state = QuizInProgress
}

// Advance moves to the next question, or completes the session when the
// last question is done. Reports whether the session completed.
func (q *Quiz) Advance() (completed bool) {
	if q.state != QuizInProgress {
		return q.state == QuizCompleted
	}
	if q.index+1 < len(q.questions) {
		q.index++
		q.options = GenerateOptions(q.questions[q.index].Sign, q.pool, OptionCount, q.rng)
		return false
	}
	q.duration = q.now().Sub(q.startedAt)
	q.state = QuizCompleted
	return true
}

// Duration returns the elapsed time of a completed session.
func (q *Quiz) Duration() time.Duration { return q.duration }

// LearnedIDs returns the deduplicated, sorted sign ids covered by this quiz,
// for handing to the progress tracker on completion.
func (q *Quiz) LearnedIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, question := range q.questions {
		if !seen[question.Sign.ID] {
			seen[question.Sign.ID] = true
			ids = append(ids, question.Sign.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// Summary builds the completion summary shown to the learner.
func (q *Quiz) Summary() Summary {
	return Summary{
		Mode:     ModeQuiz,
		Score:    q.Score,
		Mistakes: q.Mistakes,
		Total:    len(q.questions),
		Duration: q.duration,
	}
}
