// Package settings edits learner preferences in place: learning mode,
// batch sizes, autoplay and interface language.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/screen"
	"github.com/liisbet/viipekeel/internal/ui/layout"
	"github.com/liisbet/viipekeel/internal/ui/theme"
)

// setting is one editable row: a label, its possible values, and hooks to
// read and write the current one.
type setting struct {
	label  string
	values []string
	read   func(ctx context.Context) string
	write  func(ctx context.Context, v string) error
}

// SettingsScreen cycles each preference through its allowed values.
type SettingsScreen struct {
	prefs    *prefs.Prefs
	rows     []setting
	selected int
	status   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New builds the settings rows bound to p.
func New(p *prefs.Prefs) *SettingsScreen {
	counts := make([]string, len(prefs.CountOptions))
	for i, n := range prefs.CountOptions {
		counts[i] = strconv.Itoa(n)
	}

	rows := []setting{
		{
			label:  "Quiz direction",
			values: []string{string(prefs.ModeBoth), string(prefs.ModeVideoToText), string(prefs.ModeTextToVideo)},
			read:   func(ctx context.Context) string { return string(p.Mode(ctx)) },
			write:  func(ctx context.Context, v string) error { return p.SetMode(ctx, prefs.LearningMode(v)) },
		},
		{
			label:  "New signs per session",
			values: counts,
			read:   func(ctx context.Context) string { return strconv.Itoa(p.LearnCount(ctx)) },
			write: func(ctx context.Context, v string) error {
				n, err := strconv.Atoi(v)
				if err != nil {
					return err
				}
				return p.SetLearnCount(ctx, n)
			},
		},
		{
			label:  "Signs per review",
			values: counts,
			read:   func(ctx context.Context) string { return strconv.Itoa(p.RepeatCount(ctx)) },
			write: func(ctx context.Context, v string) error {
				n, err := strconv.Atoi(v)
				if err != nil {
					return err
				}
				return p.SetRepeatCount(ctx, n)
			},
		},
		{
			label:  "Autoplay videos",
			values: []string{"true", "false"},
			read:   func(ctx context.Context) string { return strconv.FormatBool(p.AutoPlay(ctx)) },
			write: func(ctx context.Context, v string) error {
				return p.SetAutoPlay(ctx, v == "true")
			},
		},
		{
			label:  "Language",
			values: locale.Available(),
			read:   func(ctx context.Context) string { return p.Language(ctx) },
			write:  func(ctx context.Context, v string) error { return p.SetLanguage(ctx, v) },
		},
	}

	return &SettingsScreen{prefs: p, rows: rows}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Setting"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l", "enter", " ":
		s.cycle(1)
	}
	return s, nil
}

// cycle moves the selected row's value by delta within its allowed values.
func (s *SettingsScreen) cycle(delta int) {
	ctx := context.Background()
	row := s.rows[s.selected]
	current := row.read(ctx)

	idx := 0
	for i, v := range row.values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(row.values)) % len(row.values)

	if err := row.write(ctx, row.values[idx]); err != nil {
		s.status = "Could not save the setting."
		return
	}
	s.status = ""
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Changes are saved immediately."))
	b.WriteString("\n\n")

	ctx := context.Background()
	labelWidth := 0
	for _, row := range s.rows {
		if len(row.label) > labelWidth {
			labelWidth = len(row.label)
		}
	}

	for i, row := range s.rows {
		value := row.read(ctx)
		line := fmt.Sprintf("%-*s   ◂ %s ▸", labelWidth, row.label, value)
		if i == s.selected {
			line = theme.Selected.Render("  ▸ " + line)
		} else {
			line = theme.Unselected.Render("    " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.status))
	}
	return b.String()
}
