package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/locale"
	"github.com/liisbet/viipekeel/internal/prefs"
	"github.com/liisbet/viipekeel/internal/progress"
	"github.com/liisbet/viipekeel/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress per category",
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
		tracker := progress.NewTracker(st)
		learned := tracker.Learned(ctx)
		lang := prefs.New(st).Language(ctx)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tLEARNED\tPROGRESS")
		for _, cat := range catalog.Categories() {
			signs := catalog.ByCategory(cat.ID)
			stats := progress.CategoryStats(signs, learned)
			title, _ := locale.CategoryTitle(cat.ID, lang)

			mark := ""
			if progress.CategoryComplete(signs, learned) {
				mark = " ✓"
			}
			fmt.Fprintf(w, "%s %s\t%d/%d\t%d%%%s\n",
				cat.Icon, title, stats.Learned, len(signs), stats.Percentage, mark)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		total := catalog.TotalSignCount()
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d/%d signs learned\n", len(learned), total)
		return nil
	},
}
