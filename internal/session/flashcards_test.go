package session

import (
	"errors"
	"testing"
)

func TestNewDeckEmptyInput(t *testing.T) {
	if _, err := NewDeck(nil, testRNG()); !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestDeckRun(t *testing.T) {
	signs := quizSigns(4)
	d, err := NewDeck(signs, testRNG())
	if err != nil {
		t.Fatal(err)
	}
	d.Start()

	seen := make(map[int]bool)
	for i := 0; d.State() == DeckInProgress; i++ {
		card, ok := d.Current()
		if !ok {
			t.Fatal("no current card mid-run")
		}
		if seen[card.ID] {
			t.Errorf("card %d shown twice", card.ID)
		}
		seen[card.ID] = true

		if d.Flipped() {
			t.Errorf("card %d starts flipped", card.ID)
		}
		d.Flip()
		if !d.Flipped() {
			t.Error("flip did not turn the card")
		}

		if i%2 == 0 {
			d.MarkKnown()
		} else {
			d.MarkUnknown()
		}
	}

	if d.State() != DeckCompleted {
		t.Fatalf("state %v, want completed", d.State())
	}
	if d.Known != 2 || d.Unknown != 2 {
		t.Errorf("known/unknown = %d/%d, want 2/2", d.Known, d.Unknown)
	}
	if len(seen) != len(signs) {
		t.Errorf("saw %d cards, want %d", len(seen), len(signs))
	}

	s := d.Summary()
	if s.Mode != ModeFlashcards || s.Total != 4 {
		t.Errorf("summary %+v", s)
	}
}
