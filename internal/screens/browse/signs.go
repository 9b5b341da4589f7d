package browse

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/screens/learn"
	"github.com/liisbet/viipekeel/internal/screens/quiz"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/ui/components"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// SignListScreen lists one category's signs with learned and favorite marks.
type SignListScreen struct {
	categoryID int
	menu       components.Menu
	tracker    *progress.Tracker
	prefs      *prefs.Prefs
}

var _ screen.Screen = (*SignListScreen)(nil)
var _ screen.KeyHintProvider = (*SignListScreen)(nil)

// NewSignList builds the sign list for a category.
func NewSignList(categoryID int, tracker *progress.Tracker, p *prefs.Prefs) *SignListScreen {
	s := &SignListScreen{categoryID: categoryID, tracker: tracker, prefs: p}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *SignListScreen) buildItems() []components.MenuItem {
	ctx := context.Background()
	learned := s.tracker.Learned(ctx)
	favorites := s.tracker.Favorites(ctx)
	lang := s.prefs.Language(ctx)

	signs := catalog.ByCategory(s.categoryID)
	items := make([]components.MenuItem, 0, len(signs))
	for _, sign := range signs {
		loc := locale.Localize(sign, lang)

		marks := ""
		if learned[sign.ID] {
			marks += " ✓"
		}
		if favorites[sign.ID] {
			marks += " ★"
		}

		signID := sign.ID
		tracker, p := s.tracker, s.prefs
		items = append(items, components.MenuItem{
			Label:  loc.Word,
			Detail: marks,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: NewDetail(signID, tracker, p)}
				}
			},
		})
	}
	return items
}

func (s *SignListScreen) Init() tea.Cmd {
	return nil
}

func (s *SignListScreen) Title() string {
	ctx := context.Background()
	title, ok := locale.CategoryTitle(s.categoryID, s.prefs.Language(ctx))
	if !ok {
		return "Signs"
	}
	return title
}

func (s *SignListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "Learn"},
		{Key: "R", Description: "Review"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		selected := s.menu.Selected
		s.menu.Items = s.buildItems()
		s.menu.Selected = selected

		switch kmsg.String() {
		case "n":
			return s, s.startLearn()
		case "r":
			return s, s.startReview()
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// startLearn studies the category's next unlearned signs, with the
// category itself as the distractor pool.
func (s *SignListScreen) startLearn() tea.Cmd {
	ctx := context.Background()
	learned := s.tracker.Learned(ctx)
	signs := catalog.ByCategory(s.categoryID)
	if progress.CategoryComplete(signs, learned) {
		return nil
	}
	next := learn.NewCategory(s.categoryID, s.tracker, s.prefs)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// startReview replays a sample of the category's learned signs.
func (s *SignListScreen) startReview() tea.Cmd {
	ctx := context.Background()
	learned := s.tracker.Learned(ctx)
	pool := catalog.ByCategory(s.categoryID)

	var known []catalog.Sign
	for _, sign := range pool {
		if learned[sign.ID] {
			known = append(known, sign)
		}
	}
	if len(known) == 0 {
		return nil
	}
	batch := session.Sample(known, s.prefs.RepeatCount(ctx), nil)
	next := quiz.New(batch, pool, true, s.tracker, s.prefs)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SignListScreen) View(width, height int) string {
	cat, err := catalog.GetCategory(s.categoryID)
	if err != nil {
		return ""
	}

	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ·  %d signs", cat.Icon, len(catalog.ByCategory(s.categoryID))))

	return header + "\n\n" + s.menu.View()
}
