// Package home is the entry screen: overall progress plus the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/screens/browse"
	"github.com/liisbet/viipekeel/internal/screens/flashcards"
	"github.com/liisbet/viipekeel/internal/screens/learn"
	"github.com/liisbet/viipekeel/internal/screens/match"
	quizscreen "github.com/liisbet/viipekeel/internal/screens/quiz"
	"github.com/liisbet/viipekeel/internal/screens/settings"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/ui/components"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
	prefs   *prefs.Prefs

	learnedCount int
	totalCount   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with its dependencies.
func New(tracker *progress.Tracker, p *prefs.Prefs) *HomeScreen {
	h := &HomeScreen{tracker: tracker, prefs: p}
	h.refresh()
	return h
}

// refresh recomputes progress figures and rebuilds the menu, keeping the
// cursor where it was.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	learned := h.tracker.Learned(ctx)
	h.learnedCount = len(learned)
	h.totalCount = catalog.TotalSignCount()

	tracker, p := h.tracker, h.prefs
	hasLearned := h.learnedCount > 0
	allLearned := h.learnedCount >= h.totalCount

	items := []components.MenuItem{
		{Label: "Browse signs", Action: func() tea.Cmd {
			return push(browse.NewCategories(tracker, p))
		}},
		{Label: "Search", Action: func() tea.Cmd {
			return push(browse.NewSearch(tracker, p))
		}},
		{Label: "Learn new signs", Disabled: allLearned, Action: func() tea.Cmd {
			return push(learn.New(tracker, p))
		}},
		{Label: "Review learned", Disabled: !hasLearned, Action: func() tea.Cmd {
			return push(newReview(tracker, p))
		}},
		{Label: "Matching game", Action: func() tea.Cmd {
			return push(match.NewPicker(tracker, p))
		}},
		{Label: "Flashcards", Action: func() tea.Cmd {
			return push(flashcards.NewPicker(tracker, p))
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return push(settings.New(p))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// newReview samples the learned set by the repeat-count preference and
// starts a review quiz over it.
func newReview(tracker *progress.Tracker, p *prefs.Prefs) screen.Screen {
	ctx := context.Background()
	learned := tracker.Learned(ctx)

	var signs []catalog.Sign
	for _, sign := range catalog.Signs() {
		if learned[sign.ID] {
			signs = append(signs, sign)
		}
	}
	batch := session.Sample(signs, p.RepeatCount(ctx), nil)
	return quizscreen.New(batch, catalog.Signs(), true, tracker, p)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Sessions pushed from here change the learned set; recompute before
	// handling the key so the menu and progress bar stay current.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refresh()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Viipekeel"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Estonian sign language, one sign at a time"))
	b.WriteString("\n\n")

	percent := 0.0
	if h.totalCount > 0 {
		percent = float64(h.learnedCount) / float64(h.totalCount)
	}
	barWidth := min(width-20, 48)
	bar := components.NewProgressBar(
		fmt.Sprintf("Learned %d/%d", h.learnedCount, h.totalCount),
		percent, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
