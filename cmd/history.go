package cmd

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice runs",
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

		runs, err := st.EventRepo().RecentRuns(context.Background(), historyLimit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No practice runs yet.")
			return nil
		}

		for _, r := range runs {
			name := r.TopicID
			if t, err := topic.Get(r.TopicID); err == nil {
				name = t.Name
			}
			result := "needs practice"
			if r.Passed {
				result = "passed"
			}
			fmt.Printf("%s  %-40s %d/%d correct, %d skipped, %s  (%s)\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				name,
				r.CorrectAnswers, r.TotalQuestions, r.Skipped,
				formatSeconds(r.ElapsedSecs),
				result)
		}
		return nil
	},
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
}
