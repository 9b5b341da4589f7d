// Package match hosts the video/word matching mini-game: a category picker
// gated on fully learned categories, and the game itself.
package match

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

// PickerScreen lists categories; only fully learned ones can be played.
type PickerScreen struct {
	menu    components.Menu
	anyOpen bool
}

var _ screen.Screen = (*PickerScreen)(nil)

// NewPicker builds the category picker from current progress.
func NewPicker(tracker *progress.Tracker, p *prefs.Prefs) *PickerScreen {
	ctx := context.Background()
	learned := tracker.Learned(ctx)
	lang := p.Language(ctx)

	var items []components.MenuItem
	anyOpen := false
	for _, cat := range catalog.Categories() {
		signs := catalog.ByCategory(cat.ID)
		stats := progress.CategoryStats(signs, learned)
		title, _ := locale.CategoryTitle(cat.ID, lang)
		label := fmt.Sprintf("%s %s", cat.Icon, title)

		if progress.CategoryComplete(signs, learned) {
			anyOpen = true
			catSigns := locale.LocalizeAll(signs, lang)
			items = append(items, components.MenuItem{
				Label:  label,
				Detail: fmt.Sprintf("%d pairs", len(signs)),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.ReplaceScreenMsg{Screen: NewGame(catSigns)}
					}
				},
			})
		} else {
			items = append(items, components.MenuItem{
				Label:    label,
				Detail:   fmt.Sprintf("🔒 %d/%d learned", stats.Learned, stats.Learned+stats.Remaining),
				Disabled: true,
			})
		}
	}

	return &PickerScreen{menu: components.NewMenu(items), anyOpen: anyOpen}
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

func (s *PickerScreen) Title() string {
	return "Matching Game"
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PickerScreen) View(width, height int) string {
	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a category. Finish learning a category to unlock its game.")

	body := s.menu.View()
	if !s.anyOpen {
		body += "\n" + theme.Hint.Render("    No categories unlocked yet — learn all signs in one first.")
	}

	return header + "\n\n" + body
}
