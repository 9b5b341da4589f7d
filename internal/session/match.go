package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/liisbet/viipekeel/internal/catalog"
)

// DefaultBatchSize is how many pairs a matching round shows at once.
const DefaultBatchSize = 3

// Matching-game pacing, scheduled by the UI like the quiz delays.
const (
	// MatchLockDelay is how long a correct pair stays highlighted before
	// it locks into place.
	MatchLockDelay = 500 * time.Millisecond
	// MismatchClearDelay is how long a wrong pairing stays visible before
	// both selections clear.
	MismatchClearDelay = time.Second
)

// Pair is one matchable sign: its video on one side, its word on the other.
type Pair struct {
	ID       int
	VideoURL string
	Word     string
}

// MatchBatch presents a slice of pairs as two independently shuffled
// columns, so video order and word order are decorrelated.
type MatchBatch struct {
	Pairs      []Pair
	VideoItems []Pair
	TextItems  []Pair
}

// PairsFromSigns projects signs into match pairs.
func PairsFromSigns(signs []catalog.Sign) []Pair {
	pairs := make([]Pair, len(signs))
	for i, s := range signs {
		pairs[i] = Pair{ID: s.ID, VideoURL: s.VideoURL, Word: s.Word}
	}
	return pairs
}

// BuildMatchBatches splits pairs into ceil(len/batchSize) batches; the final
// batch may be smaller. Each batch shuffles its two columns independently.
func BuildMatchBatches(pairs []Pair, batchSize int, rng *rand.Rand) []MatchBatch {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var batches []MatchBatch
	for start := 0; start < len(pairs); start += batchSize {
		end := min(start+batchSize, len(pairs))
		chunk := pairs[start:end]

		batches = append(batches, MatchBatch{
			Pairs:      chunk,
			VideoItems: Shuffled(chunk, rng),
			TextItems:  Shuffled(chunk, rng),
		})
	}
	return batches
}

// MatchState is the matching session's lifecycle state.
type MatchState int

const (
	MatchNotStarted MatchState = iota
	MatchInProgress
	MatchCompleted
)

// MatchOutcome is the result of a selection.
type MatchOutcome int

const (
	// MatchPending means only one column has a selection so far.
	MatchPending MatchOutcome = iota
	// MatchHit means the two selections belong to the same pair; the pair
	// locks and is excluded from further interaction.
	MatchHit
	// MatchMiss means the selections disagree; the UI clears both after
	// MismatchClearDelay.
	MatchMiss
	// MatchIgnored means the selection targeted a locked pair.
	MatchIgnored
)

const noSelection = -1

// MatchGame drives a video/word matching session over shuffled batches.
type MatchGame struct {
	ID string

	batches    []MatchBatch
	batchIndex int

	matched       map[int]bool // locked pair ids in the current batch
	totalMatched  int
	totalPairs    int
	selectedVideo int
	selectedText  int

	Mistakes int

	state     MatchState
	startedAt time.Time
	duration  time.Duration
	now       func() time.Time
}

// NewMatchGame builds a matching session from a category's signs. The pair
// order is shuffled before batching so every game differs. Returns
// ErrEmptySession when signs is empty.
func NewMatchGame(signs []catalog.Sign, batchSize int, rng *rand.Rand) (*MatchGame, error) {
	if len(signs) == 0 {
		return nil, ErrEmptySession
	}
	pairs := PairsFromSigns(Shuffled(signs, rng))
	return &MatchGame{
		ID:            uuid.NewString(),
		batches:       BuildMatchBatches(pairs, batchSize, rng),
		matched:       make(map[int]bool),
		totalPairs:    len(pairs),
		selectedVideo: noSelection,
		selectedText:  noSelection,
		state:         MatchNotStarted,
		now:           time.Now,
	}, nil
}

// Start begins the session and the clock.
func (g *MatchGame) Start() {
	if g.state != MatchNotStarted {
		return
	}
	g.startedAt = g.now()
	g.state = MatchInProgress
}

// State returns the current lifecycle state.
func (g *MatchGame) State() MatchState { return g.state }

// Batch returns the active batch.
func (g *MatchGame) Batch() MatchBatch { return g.batches[g.batchIndex] }

// BatchIndex returns the zero-based index of the active batch.
func (g *MatchGame) BatchIndex() int { return g.batchIndex }

// BatchCount returns the total number of batches.
func (g *MatchGame) BatchCount() int { return len(g.batches) }

// TotalMatched returns how many pairs are matched across all batches.
func (g *MatchGame) TotalMatched() int { return g.totalMatched }

// IsMatched reports whether a pair in the current batch is locked.
func (g *MatchGame) IsMatched(pairID int) bool { return g.matched[pairID] }

// Selection returns the currently selected pair ids for each column, or -1.
func (g *MatchGame) Selection() (videoPairID, textPairID int) {
	return g.selectedVideo, g.selectedText
}

// SelectVideo records a selection in the video column and resolves the pair
// if the text column has a selection too.
func (g *MatchGame) SelectVideo(pairID int) MatchOutcome {
	if g.state != MatchInProgress || g.matched[pairID] {
		return MatchIgnored
	}
	g.selectedVideo = pairID
	return g.resolve()
}

// SelectText records a selection in the text column and resolves the pair
// if the video column has a selection too.
func (g *MatchGame) SelectText(pairID int) MatchOutcome {
	if g.state != MatchInProgress || g.matched[pairID] {
		return MatchIgnored
	}
	g.selectedText = pairID
	return g.resolve()
}

// ClearSelections drops both selections. Called by the UI after a miss.
func (g *MatchGame) ClearSelections() {
	g.selectedVideo = noSelection
	g.selectedText = noSelection
}

func (g *MatchGame) resolve() MatchOutcome {
	if g.selectedVideo == noSelection || g.selectedText == noSelection {
		return MatchPending
	}
	if g.selectedVideo != g.selectedText {
		g.Mistakes++
		return MatchMiss
	}

	g.matched[g.selectedVideo] = true
	g.totalMatched++
	g.ClearSelections()

	// Matching the final pair of the final batch ends the session.
	if g.totalMatched == g.totalPairs {
		g.duration = g.now().Sub(g.startedAt)
		g.state = MatchCompleted
	}
	return MatchHit
}

// BatchComplete reports whether every pair in the active batch is matched.
func (g *MatchGame) BatchComplete() bool {
	for _, p := range g.Batch().Pairs {
		if !g.matched[p.ID] {
			return false
		}
	}
	return true
}

// AdvanceBatch moves to the next batch. It is a manual transition, gated on
// batch completion; advancing past the last batch completes the session.
func (g *MatchGame) AdvanceBatch() bool {
	if g.state != MatchInProgress || !g.BatchComplete() {
		return false
	}
	if g.batchIndex+1 < len(g.batches) {
		g.batchIndex++
		g.matched = make(map[int]bool)
		g.ClearSelections()
		return true
	}
	g.duration = g.now().Sub(g.startedAt)
	g.state = MatchCompleted
	return true
}

// Duration returns the elapsed time of a completed session.
func (g *MatchGame) Duration() time.Duration { return g.duration }

// Summary builds the completion summary. Matching sessions never touch the
// learned set.
func (g *MatchGame) Summary() Summary {
	return Summary{
		Mode:     ModeMatching,
		Matched:  g.totalMatched,
		Mistakes: g.Mistakes,
		Total:    g.totalPairs,
		Duration: g.duration,
	}
}
