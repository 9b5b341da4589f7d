package cmd

import (
	"fmt"
	"strconv"

	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/store"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		p := prefs.New(st)

		if v, _ := cmd.Flags().GetString("mode"); v != "" {
			mode := prefs.LearningMode(v)
			switch mode {
			case prefs.ModeVideoToText, prefs.ModeTextToVideo, prefs.ModeBoth:
			default:
				return fmt.Errorf("invalid mode %q (want %s, %s or %s)",
					v, prefs.ModeVideoToText, prefs.ModeTextToVideo, prefs.ModeBoth)
			}
			if err := p.SetMode(ctx, mode); err != nil {
				return err
			}
		}
		if n, _ := cmd.Flags().GetInt("learn-count"); n > 0 {
			if !validCount(n) {
				return fmt.Errorf("invalid count %d (want one of %v)", n, prefs.CountOptions)
			}
			if err := p.SetLearnCount(ctx, n); err != nil {
				return err
			}
		}
		if n, _ := cmd.Flags().GetInt("repeat-count"); n > 0 {
			if !validCount(n) {
				return fmt.Errorf("invalid count %d (want one of %v)", n, prefs.CountOptions)
			}
			if err := p.SetRepeatCount(ctx, n); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("autoplay") {
			v, _ := cmd.Flags().GetBool("autoplay")
			if err := p.SetAutoPlay(ctx, v); err != nil {
				return err
			}
		}
		if v, _ := cmd.Flags().GetString("language"); v != "" {
			if err := p.SetLanguage(ctx, v); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "mode:         ", p.Mode(ctx))
		fmt.Fprintln(out, "learn-count:  ", p.LearnCount(ctx))
		fmt.Fprintln(out, "repeat-count: ", p.RepeatCount(ctx))
		fmt.Fprintln(out, "autoplay:     ", strconv.FormatBool(p.AutoPlay(ctx)))
		fmt.Fprintln(out, "language:     ", p.Language(ctx))
		return nil
	},
}

func validCount(n int) bool {
	for _, opt := range prefs.CountOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func init() {
	prefsCmd.Flags().String("mode", "", "Quiz direction: video-to-text, text-to-video or both")
	prefsCmd.Flags().Int("learn-count", 0, "New signs per learning session")
	prefsCmd.Flags().Int("repeat-count", 0, "Signs per review session")
	prefsCmd.Flags().Bool("autoplay", true, "Autoplay sign videos")
	prefsCmd.Flags().String("language", "", "Interface language code")
}
