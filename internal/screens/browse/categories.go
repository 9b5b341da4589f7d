// Package browse is the dictionary side of the app: category list, sign
// list, sign detail with favorites and personal notes, and search.
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
	"github.com/liisbet/viipekeel/internal/ui/components"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// CategoriesScreen lists all categories with their learning progress.
type CategoriesScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
	prefs   *prefs.Prefs
}

var _ screen.Screen = (*CategoriesScreen)(nil)

// NewCategories builds the category list.
func NewCategories(tracker *progress.Tracker, p *prefs.Prefs) *CategoriesScreen {
	s := &CategoriesScreen{tracker: tracker, prefs: p}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *CategoriesScreen) buildItems() []components.MenuItem {
	ctx := context.Background()
	learned := s.tracker.Learned(ctx)
	lang := s.prefs.Language(ctx)

	items := make([]components.MenuItem, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		signs := catalog.ByCategory(cat.ID)
		stats := progress.CategoryStats(signs, learned)
		title, _ := locale.CategoryTitle(cat.ID, lang)

		detail := fmt.Sprintf("%d/%d learned", stats.Learned, stats.Learned+stats.Remaining)
		if progress.CategoryComplete(signs, learned) {
			detail += " ✓"
		}

		catID := cat.ID
		tracker, p := s.tracker, s.prefs
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %s", cat.Icon, title),
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: NewSignList(catID, tracker, p)}
				}
			},
		})
	}
	return items
}

func (s *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoriesScreen) Title() string {
	return "Categories"
}

func (s *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Progress may have moved while a child screen was up; rebuild the
	// annotations but keep the cursor.
	if _, ok := msg.(tea.KeyMsg); ok {
		selected := s.menu.Selected
		s.menu.Items = s.buildItems()
		s.menu.Selected = selected
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CategoriesScreen) View(width, height int) string {
	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Browse the sign dictionary by topic.")

	return header + "\n\n" + s.menu.View()
}
