package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/liisbet/viipekeel/internal/catalog"
)

// DeckState is the flashcard session's lifecycle state.
type DeckState int

const (
	DeckNotStarted DeckState = iota
	DeckInProgress
	DeckCompleted
)

// Deck drives a flashcard run over a shuffled category: the learner flips
// each card and sorts it as known or unknown. Flashcards never write to the
// learned set — the quiz is the only path to "learned".
type Deck struct {
	ID string

	cards   []catalog.Sign
	index   int
	flipped bool

	Known   int
	Unknown int

	state     DeckState
	startedAt time.Time
	duration  time.Duration
	now       func() time.Time
}

// NewDeck builds a flashcard deck from signs, shuffled. Returns
// ErrEmptySession when signs is empty.
func NewDeck(signs []catalog.Sign, rng *rand.Rand) (*Deck, error) {
	if len(signs) == 0 {
		return nil, ErrEmptySession
	}
	return &Deck{
		ID:    uuid.NewString(),
		cards: Shuffled(signs, rng),
		state: DeckNotStarted,
		now:   time.Now,
	}, nil
}

// Start begins the run.
func (d *Deck) Start() {
	if d.state != DeckNotStarted {
		return
	}
	d.index = 0
	d.Known = 0
	d.Unknown = 0
	d.flipped = false
	d.startedAt = d.now()
	d.state = DeckInProgress
}

// State returns the current lifecycle state.
func (d *Deck) State() DeckState { return d.state }

// Len returns the deck size.
func (d *Deck) Len() int { return len(d.cards) }

// Index returns the zero-based position of the current card.
func (d *Deck) Index() int { return d.index }

// Current returns the active card. ok is false outside an active run.
func (d *Deck) Current() (catalog.Sign, bool) {
	if d.state != DeckInProgress {
		return catalog.Sign{}, false
	}
	return d.cards[d.index], true
}

// Flipped reports whether the current card shows its answer side.
func (d *Deck) Flipped() bool { return d.flipped }

// Flip turns the current card over.
func (d *Deck) Flip() {
	if d.state == DeckInProgress {
		d.flipped = !d.flipped
	}
}

// MarkKnown sorts the current card as known and advances.
func (d *Deck) MarkKnown() {
	if d.state != DeckInProgress {
		return
	}
	d.Known++
	d.advance()
}

// MarkUnknown sorts the current card as not yet known and advances.
func (d *Deck) MarkUnknown() {
	if d.state != DeckInProgress {
		return
	}
	d.Unknown++
	d.advance()
}

func (d *Deck) advance() {
	d.flipped = false
	if d.index+1 < len(d.cards) {
		d.index++
		return
	}
	d.duration = d.now().Sub(d.startedAt)
	d.state = DeckCompleted
}

// Duration returns the elapsed time of a completed run.
func (d *Deck) Duration() time.Duration { return d.duration }

// Summary builds the completion summary.
func (d *Deck) Summary() Summary {
	return Summary{
		Mode:     ModeFlashcards,
		Known:    d.Known,
		Unknown:  d.Unknown,
		Total:    len(d.cards),
		Duration: d.duration,
	}
}
