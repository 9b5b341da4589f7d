// Package flashcards runs a self-sorted flip-card session over one fully
// learned category, picked through a completion-gated category list.
package flashcards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/router"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/screens/summary"
	"github.com/liisbet/viipekeel/internal/session"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// FlashcardsScreen drives a session.Deck.
type FlashcardsScreen struct {
	deck   *session.Deck
	errMsg string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New builds a deck over one category's signs, already localized by the
// picker.
func New(cards []catalog.Sign) *FlashcardsScreen {
	s := &FlashcardsScreen{}
	deck, err := session.NewDeck(cards, nil)
	if err != nil {
		s.errMsg = "This deck has no cards."
		return s
	}
	s.deck = deck
	return s
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	if s.deck != nil {
		s.deck.Start()
	}
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.deck == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.deck.Flipped() {
		return []layout.KeyHint{
			{Key: "Y", Description: "Knew it"},
			{Key: "N", Description: "Still learning"},
			{Key: "Space", Description: "Flip back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.deck == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch kmsg.String() {
	case " ", "enter":
		s.deck.Flip()
	case "y":
		if s.deck.Flipped() {
			s.deck.MarkKnown()
		}
	case "n":
		if s.deck.Flipped() {
			s.deck.MarkUnknown()
		}
	}

	if s.deck.State() == session.DeckCompleted {
		sum := s.deck.Summary()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum, 0)}
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.errMsg)
	}
	card, ok := s.deck.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d of %d", s.deck.Index()+1, s.deck.Len())))
	b.WriteString("\n\n")

	var face string
	if s.deck.Flipped() {
		face = theme.Body.Render(card.Description) + "\n\n" +
			theme.Hint.Render("▶ "+card.VideoURL)
	} else {
		face = theme.Title.Render(card.Word) + "\n\n" +
			theme.Hint.Render("How is it signed?")
	}

	box := theme.Card.Width(min(width-8, 56)).Render(face)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))

	return b.String()
}
