package browse

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/ui/components"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// DetailScreen shows one sign: description, video, keywords, learned and
// favorite status, and the learner's personal note.
type DetailScreen struct {
	signID  int
	tracker *progress.Tracker
	prefs   *prefs.Prefs

	editing bool
	input   components.TextInput
	status  string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)
var _ screen.EscConsumer = (*DetailScreen)(nil)

// NewDetail builds the detail screen for a sign.
func NewDetail(signID int, tracker *progress.Tracker, p *prefs.Prefs) *DetailScreen {
	return &DetailScreen{signID: signID, tracker: tracker, prefs: p}
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Title() string {
	sign, err := catalog.GetSign(s.signID)
	if err != nil {
		return "Sign"
	}
	return locale.Localize(sign, s.prefs.Language(context.Background())).Word
}

// ConsumesEsc keeps Esc for the note editor while it is open.
func (s *DetailScreen) ConsumesEsc() bool {
	return s.editing
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save note"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "F", Description: "Favorite"},
		{Key: "E", Description: "Edit note"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.editing {
		if isKey {
			switch kmsg.String() {
			case "enter":
				ctx := context.Background()
				if s.tracker.SetNote(ctx, s.signID, strings.TrimSpace(s.input.Value())) {
					s.status = "Note saved."
				} else {
					s.status = "Could not save the note."
				}
				s.editing = false
				return s, nil
			case "esc":
				s.editing = false
				s.status = ""
				return s, nil
			}
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if !isKey {
		return s, nil
	}

	ctx := context.Background()
	switch kmsg.String() {
	case "f":
		nowFav, ok := s.tracker.ToggleFavorite(ctx, s.signID)
		switch {
		case !ok:
			s.status = "Could not update favorites."
		case nowFav:
			s.status = "Added to favorites."
		default:
			s.status = "Removed from favorites."
		}
	case "e":
		s.input = components.NewTextInput("Your own memory hook...", false, 120)
		s.input.SetValue(s.tracker.Notes(ctx)[s.signID])
		s.editing = true
		s.status = ""
		return s, s.input.Init()
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	sign, err := catalog.GetSign(s.signID)
	if err != nil {
		return ""
	}

	ctx := context.Background()
	loc := locale.Localize(sign, s.prefs.Language(ctx))
	learned := s.tracker.Learned(ctx)[s.signID]
	favorite := s.tracker.Favorites(ctx)[s.signID]
	note := s.tracker.Notes(ctx)[s.signID]

	var marks []string
	if learned {
		marks = append(marks, theme.Correct.Render("✓ learned"))
	}
	if favorite {
		marks = append(marks, lipgloss.NewStyle().Foreground(theme.Accent).Render("★ favorite"))
	}

	body := theme.Title.Render(loc.Word) + "\n"
	if len(marks) > 0 {
		body += strings.Join(marks, "  ") + "\n"
	}
	body += "\n" + theme.Body.Render(loc.Description) + "\n\n" +
		theme.Hint.Render("▶ "+loc.VideoURL)
	if s.prefs.AutoPlay(ctx) {
		body += theme.Hint.Render("  (autoplays)")
	}
	if len(sign.Keywords) > 0 {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Keywords: "+strings.Join(sign.Keywords, ", "))
	}

	if s.editing {
		body += "\n\n" + theme.Subtitle.Render("Note") + "\n" + s.input.View()
	} else if note != "" {
		body += "\n\n" + theme.Subtitle.Render("Note") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Render(note)
	}

	card := theme.Card.Width(min(width-8, 64)).Render(body)
	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, card)

	if s.status != "" {
		out += "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.status)
	}
	return out
}
