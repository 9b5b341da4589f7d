// Package learn walks the learner through the next batch of unlearned
// signs before handing the batch to a quiz.
package learn

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/screens/quiz"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// LearnScreen shows the batch signs one at a time.
type LearnScreen struct {
	batch   []catalog.Sign
	pool    []catalog.Sign // distractor pool for the follow-up quiz
	index   int
	tracker *progress.Tracker
	prefs   *prefs.Prefs
	lang    string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New computes the next batch across the whole catalogue.
func New(tracker *progress.Tracker, p *prefs.Prefs) *LearnScreen {
	return newScreen(catalog.Signs(), tracker, p)
}

// NewCategory computes the next batch from one category; the follow-up
// quiz draws its wrong options from that category only.
func NewCategory(categoryID int, tracker *progress.Tracker, p *prefs.Prefs) *LearnScreen {
	return newScreen(catalog.ByCategory(categoryID), tracker, p)
}

func newScreen(pool []catalog.Sign, tracker *progress.Tracker, p *prefs.Prefs) *LearnScreen {
	ctx := context.Background()
	learned := tracker.Learned(ctx)
	batch := progress.NextBatch(pool, learned, p.LearnCount(ctx))
	return &LearnScreen{
		batch:   batch,
		pool:    pool,
		tracker: tracker,
		prefs:   p,
		lang:    p.Language(ctx),
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if len(s.batch) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Browse"},
	}
	if s.index == len(s.batch)-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start quiz"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.batch) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.index > 0 {
			s.index--
		}
	case "right", "l":
		if s.index < len(s.batch)-1 {
			s.index++
		}
	case "enter", " ":
		if s.index < len(s.batch)-1 {
			s.index++
			return s, nil
		}
		batch, pool := s.batch, s.pool
		tracker := s.tracker
		p := s.prefs
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: quiz.New(batch, pool, false, tracker, p),
			}
		}
	}
	return s, nil
}

func (s *LearnScreen) View(width, height int) string {
	if len(s.batch) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("\n\nAll signs learned — nothing new to study!")
	}

	sign := locale.Localize(s.batch[s.index], s.lang)
	cat, _ := catalog.GetCategory(sign.CategoryID)
	catTitle, _ := locale.CategoryTitle(sign.CategoryID, s.lang)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("New sign %d of %d  ·  %s %s", s.index+1, len(s.batch), cat.Icon, catTitle)))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 56)).Render(
		theme.Title.Render(sign.Word) + "\n\n" +
			theme.Body.Render(sign.Description) + "\n\n" +
			theme.Hint.Render("▶ "+sign.VideoURL),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	dots := make([]string, len(s.batch))
	for i := range s.batch {
		if i == s.index {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(dots, " ")))

	return b.String()
}
