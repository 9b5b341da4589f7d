package cmd

import (
	"fmt"

	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Reset clears learner data. By default nothing is touched; pick what to clear with --learned, --favorites, --notes or --all.",
	RunE: func(cmd *cobra.Command, args []string) error {
		learned, _ := cmd.Flags().GetBool("learned")
		favorites, _ := cmd.Flags().GetBool("favorites")
		notes, _ := cmd.Flags().GetBool("notes")
		all, _ := cmd.Flags().GetBool("all")
		if all {
			learned, favorites, notes = true, true, true
		}
		if !learned && !favorites && !notes {
			return fmt.Errorf("nothing selected; use --learned, --favorites, --notes or --all")
		}

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
		tracker := progress.NewTracker(st)

		if learned {
			if !tracker.ResetLearned(ctx) {
				return fmt.Errorf("reset learned signs")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Learned signs cleared.")
		}
		if favorites {
			if !tracker.ResetFavorites(ctx) {
				return fmt.Errorf("reset favorites")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared.")
		}
		if notes {
			if !tracker.ResetNotes(ctx) {
				return fmt.Errorf("reset notes")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notes cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("learned", false, "Clear the learned sign set")
	resetCmd.Flags().Bool("favorites", false, "Clear favorites")
	resetCmd.Flags().Bool("notes", false, "Clear personal notes")
	resetCmd.Flags().Bool("all", false, "Clear everything")
}
