package session

import (
	"errors"
	"testing"
	"time"
)

func matchPairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{ID: i + 1, Word: string(rune('a' + i))}
	}
	return pairs
}

func TestBuildMatchBatchesSizes(t *testing.T) {
	tests := []struct {
		pairs     int
		batchSize int
		wantSizes []int
	}{
		{7, 3, []int{3, 3, 1}},
		{6, 3, []int{3, 3}},
		{2, 3, []int{2}},
		{0, 3, nil},
		{5, 0, []int{3, 2}}, // non-positive size falls back to the default
	}

	for _, tt := range tests {
		batches := BuildMatchBatches(matchPairs(tt.pairs), tt.batchSize, testRNG())
		if len(batches) != len(tt.wantSizes) {
			t.Errorf("%d pairs / size %d: %d batches, want %d", tt.pairs, tt.batchSize, len(batches), len(tt.wantSizes))
			continue
		}
		for i, b := range batches {
			if len(b.Pairs) != tt.wantSizes[i] {
				t.Errorf("%d pairs / size %d: batch %d has %d pairs, want %d", tt.pairs, tt.batchSize, i, len(b.Pairs), tt.wantSizes[i])
			}
		}
	}
}

func TestBatchColumnsArePermutations(t *testing.T) {
	batches := BuildMatchBatches(matchPairs(6), 3, testRNG())

	for i, b := range batches {
		want := make(map[int]bool)
		for _, p := range b.Pairs {
			want[p.ID] = true
		}
		for _, col := range [][]Pair{b.VideoItems, b.TextItems} {
			if len(col) != len(b.Pairs) {
				t.Fatalf("batch %d column size %d, want %d", i, len(col), len(b.Pairs))
			}
			seen := make(map[int]bool)
			for _, p := range col {
				if !want[p.ID] || seen[p.ID] {
					t.Errorf("batch %d column is not a permutation of its pairs", i)
				}
				seen[p.ID] = true
			}
		}
	}
}

func TestNewMatchGameEmptyInput(t *testing.T) {
	if _, err := NewMatchGame(nil, 3, testRNG()); !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestMatchGameFullRun(t *testing.T) {
	signs := quizSigns(7)
	g, err := NewMatchGame(signs, 3, testRNG())
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	g.now = func() time.Time { return clock }

	g.Start()
	if g.BatchCount() != 3 {
		t.Fatalf("batch count %d, want 3", g.BatchCount())
	}

	for batch := 0; batch < g.BatchCount(); batch++ {
		for _, p := range g.Batch().Pairs {
			if out := g.SelectVideo(p.ID); out != MatchPending {
				t.Fatalf("video selection outcome %v, want pending", out)
			}
			if out := g.SelectText(p.ID); out != MatchHit {
				t.Fatalf("text selection outcome %v, want hit", out)
			}
			if !g.IsMatched(p.ID) {
				t.Fatalf("pair %d not locked after hit", p.ID)
			}
			clock = clock.Add(2 * time.Second)
		}
		if !g.BatchComplete() {
			t.Fatalf("batch %d not complete after matching all pairs", batch)
		}
		if batch < g.BatchCount()-1 {
			if !g.AdvanceBatch() {
				t.Fatalf("advance from batch %d failed", batch)
			}
		}
	}

	// Matching the last pair of the last batch completed the session.
	if g.State() != MatchCompleted {
		t.Fatalf("state %v, want completed", g.State())
	}
	if g.TotalMatched() != 7 {
		t.Errorf("matched %d, want 7", g.TotalMatched())
	}
	if g.Mistakes != 0 {
		t.Errorf("mistakes %d, want 0", g.Mistakes)
	}
	if got, want := g.Duration(), clock.Sub(start); got != want {
		t.Errorf("duration %v, want %v", got, want)
	}
}

func TestMatchGameMismatch(t *testing.T) {
	signs := quizSigns(3)
	g, err := NewMatchGame(signs, 3, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	g.Start()

	pairs := g.Batch().Pairs
	g.SelectVideo(pairs[0].ID)
	if out := g.SelectText(pairs[1].ID); out != MatchMiss {
		t.Fatalf("outcome %v, want miss", out)
	}
	if g.Mistakes != 1 {
		t.Errorf("mistakes %d, want 1", g.Mistakes)
	}
	if g.IsMatched(pairs[0].ID) || g.IsMatched(pairs[1].ID) {
		t.Error("mismatch locked a pair")
	}

	// Selections stay visible until the UI clears them after the delay.
	v, txt := g.Selection()
	if v != pairs[0].ID || txt != pairs[1].ID {
		t.Errorf("selection = (%d, %d), want (%d, %d)", v, txt, pairs[0].ID, pairs[1].ID)
	}
	g.ClearSelections()
	v, txt = g.Selection()
	if v != -1 || txt != -1 {
		t.Errorf("selection after clear = (%d, %d), want cleared", v, txt)
	}
}

func TestMatchGameLockedPairIgnored(t *testing.T) {
	signs := quizSigns(2)
	g, err := NewMatchGame(signs, 3, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	g.Start()

	p := g.Batch().Pairs[0]
	g.SelectVideo(p.ID)
	g.SelectText(p.ID)

	if out := g.SelectVideo(p.ID); out != MatchIgnored {
		t.Errorf("selecting a locked pair returned %v, want ignored", out)
	}
}

func TestAdvanceBatchGatedOnCompletion(t *testing.T) {
	signs := quizSigns(6)
	g, err := NewMatchGame(signs, 3, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	g.Start()

	if g.AdvanceBatch() {
		t.Fatal("advanced past an incomplete batch")
	}
	if g.BatchIndex() != 0 {
		t.Errorf("batch index %d, want 0", g.BatchIndex())
	}
}
