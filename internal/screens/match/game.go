package match

import (
	"fmt"
	"strings"
	"time"

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

// clearMsg fires after the mismatch delay to clear both selections.
type clearMsg struct {
	gameID string
}

// lockedMsg fires after the hit delay, once the pair has visually locked.
type lockedMsg struct {
	gameID string
}

// GameScreen runs one matching game over a category.
type GameScreen struct {
	game    *session.MatchGame
	locked  bool // input frozen while a hit or miss is shown
	flashID int  // pair currently flashing green, 0 when none
	errMsg  string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// NewGame builds the game over the category's signs.
func NewGame(signs []catalog.Sign) *GameScreen {
	g, err := session.NewMatchGame(signs, session.DefaultBatchSize, nil)
	s := &GameScreen{}
	if err != nil {
		s.errMsg = "Nothing to match in this category."
		return s
	}
	s.game = g
	return s
}

func (s *GameScreen) Init() tea.Cmd {
	if s.game != nil {
		s.game.Start()
	}
	return nil
}

func (s *GameScreen) Title() string {
	return "Matching Game"
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.game != nil && s.game.BatchComplete() && s.game.State() == session.MatchInProgress {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next batch"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Pick video"},
		{Key: "a-z", Description: "Pick word"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMsg:
		if s.game == nil || msg.gameID != s.game.ID {
			return s, nil
		}
		s.game.ClearSelections()
		s.locked = false
		return s, nil

	case lockedMsg:
		if s.game == nil || msg.gameID != s.game.ID {
			return s, nil
		}
		s.flashID = 0
		s.locked = false
		if s.game.State() == session.MatchCompleted {
			return s, s.finish()
		}
		return s, nil

	case tea.KeyMsg:
		if s.game == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if s.locked || s.game.State() != session.MatchInProgress {
			return s, nil
		}
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *GameScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	batch := s.game.Batch()

	if s.game.BatchComplete() {
		if key == "enter" || key == " " {
			s.game.AdvanceBatch()
			if s.game.State() == session.MatchCompleted {
				return s, s.finish()
			}
		}
		return s, nil
	}

	var outcome session.MatchOutcome
	pairID := 0
	handled := false

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(batch.VideoItems) {
			pairID = batch.VideoItems[i].ID
			outcome = s.game.SelectVideo(pairID)
			handled = true
		}
	}
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		i := int(key[0] - 'a')
		if i < len(batch.TextItems) {
			pairID = batch.TextItems[i].ID
			outcome = s.game.SelectText(pairID)
			handled = true
		}
	}
	if !handled {
		return s, nil
	}

	switch outcome {
	case session.MatchMiss:
		s.locked = true
		id := s.game.ID
		return s, tea.Tick(session.MismatchClearDelay, func(time.Time) tea.Msg {
			return clearMsg{gameID: id}
		})
	case session.MatchHit:
		// Flash the pair green for the lock delay before it settles.
		s.locked = true
		s.flashID = pairID
		id := s.game.ID
		return s, tea.Tick(session.MatchLockDelay, func(time.Time) tea.Msg {
			return lockedMsg{gameID: id}
		})
	}
	return s, nil
}

func (s *GameScreen) finish() tea.Cmd {
	sum := s.game.Summary()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, 0)}
	}
}

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.errMsg)
	}
	if s.game == nil || s.game.State() == session.MatchNotStarted {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Batch %d of %d  ·  %d matched  ·  %d misses",
			s.game.BatchIndex()+1, s.game.BatchCount(), s.game.TotalMatched(), s.game.Mistakes)))
	b.WriteString("\n\n")

	batch := s.game.Batch()
	selVideo, selText := s.game.Selection()

	var left, right []string
	left = append(left, theme.Subtitle.Render("Videos"))
	for i, item := range batch.VideoItems {
		left = append(left, s.renderItem(fmt.Sprintf("%d", i+1), "▶ "+videoSlug(item.VideoURL), item.ID, selVideo))
	}
	right = append(right, theme.Subtitle.Render("Words"))
	for i, item := range batch.TextItems {
		right = append(right, s.renderItem(string(rune('a'+i)), item.Word, item.ID, selText))
	}

	leftCol := lipgloss.NewStyle().Width(width / 2).Align(lipgloss.Center).Render(strings.Join(left, "\n"))
	rightCol := lipgloss.NewStyle().Width(width - width/2).Align(lipgloss.Center).Render(strings.Join(right, "\n"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol))

	if s.game.BatchComplete() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Batch cleared! Press Enter for the next one."))
	} else if s.locked && s.flashID == 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not a pair."))
	}

	return b.String()
}

func (s *GameScreen) renderItem(key, label string, pairID, selected int) string {
	line := key + ") " + label
	switch {
	case pairID == s.flashID && s.flashID != 0:
		return theme.Correct.Render(line)
	case s.game.IsMatched(pairID):
		return theme.MatchDone.Render("✓ " + label)
	case pairID == selected:
		if s.locked {
			return theme.Incorrect.Render(line)
		}
		return theme.MatchSelected.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

// videoSlug trims a video URL down to its file name for column display.
func videoSlug(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
