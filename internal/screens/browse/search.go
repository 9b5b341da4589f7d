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
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// maxSearchResults caps the result list so it fits the content area.
const maxSearchResults = 10

// SearchScreen searches signs by word and keywords as the learner types.
type SearchScreen struct {
	input    components.TextInput
	results  []catalog.Sign
	selected int
	tracker  *progress.Tracker
	prefs    *prefs.Prefs
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// NewSearch builds an empty search screen.
func NewSearch(tracker *progress.Tracker, p *prefs.Prefs) *SearchScreen {
	return &SearchScreen{
		input:   components.NewTextInput("Type a word or keyword...", false, 60),
		tracker: tracker,
		prefs:   p,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return "Search"
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Results"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				signID := s.results[s.selected].ID
				tracker, p := s.tracker, s.prefs
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewDetail(signID, tracker, p)}
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	s.results = locale.Search(s.input.Value(), s.prefs.Language(context.Background()))
	if len(s.results) > maxSearchResults {
		s.results = s.results[:maxSearchResults]
	}
	if s.selected >= len(s.results) {
		s.selected = 0
	}
	return s, cmd
}

func (s *SearchScreen) View(width, height int) string {
	lang := s.prefs.Language(context.Background())

	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()) + "\n\n"

	if s.input.Value() == "" {
		return out + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Search across all categories.")
	}
	if len(s.results) == 0 {
		return out + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No signs found.")
	}

	for i, sign := range s.results {
		loc := locale.Localize(sign, lang)
		title, _ := locale.CategoryTitle(sign.CategoryID, lang)
		line := fmt.Sprintf("%s  %s", loc.Word,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("· "+title))
		if i == s.selected {
			line = theme.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		out += lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"
	}
	return out
}
