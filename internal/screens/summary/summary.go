package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	summary      session.Summary
	newlyLearned int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. newlyLearned is the number of signs the
// session added to the learned set; pass 0 for review and game sessions.
func New(sum session.Summary, newlyLearned int) *SummaryScreen {
	return &SummaryScreen{summary: sum, newlyLearned: newlyLearned}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	title := "Session complete!"
	switch sum.Mode {
	case session.ModeMatching:
		title = "All pairs matched!"
	case session.ModeFlashcards:
		title = "Deck finished!"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Duration: " + session.FormatDuration(sum.Duration)))
	b.WriteString("\n\n")

	var statsLine string
	switch sum.Mode {
	case session.ModeMatching:
		statsLine = fmt.Sprintf("Pairs: %d        Misses: %d", sum.Matched, sum.Mistakes)
	case session.ModeFlashcards:
		statsLine = fmt.Sprintf("Cards: %d        Knew: %d        Still learning: %d",
			sum.Total, sum.Known, sum.Unknown)
	default:
		accuracy := 0
		if sum.Total > 0 {
			correctFirstTry := sum.Total - sum.Mistakes
			if correctFirstTry < 0 {
				correctFirstTry = 0
			}
			accuracy = correctFirstTry * 100 / sum.Total
		}
		statsLine = fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %d%%",
			sum.Total, sum.Score, accuracy)
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if s.newlyLearned > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("✦ %d new signs learned", s.newlyLearned)))
		b.WriteString("\n")
	}

	return b.String()
}
