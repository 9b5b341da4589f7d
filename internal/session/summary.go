package session

import (
	"fmt"
	"time"
)

// Mode identifies the kind of session a summary came from.
type Mode int

const (
	ModeQuiz Mode = iota
	ModeMatching
	ModeFlashcards
)

func (m Mode) String() string {
	switch m {
	case ModeMatching:
		return "matching"
	case ModeFlashcards:
		return "flashcards"
	default:
		return "quiz"
	}
}

// Summary carries the completion figures a results screen displays. Fields
// not applicable to the mode stay zero.
type Summary struct {
	Mode     Mode
	Score    int // quiz: correct answers
	Mistakes int // quiz and matching
	Matched  int // matching: locked pairs
	Known    int // flashcards
	Unknown  int // flashcards
	Total    int // questions, pairs or cards
	Duration time.Duration
}

// FormatDuration renders a duration as m:ss for the results screen.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
