package cmd

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List practice topics and completion status",
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := topic.All()
		if err != nil {
			return fmt.Errorf("load topics: %w", err)
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

		progress := st.ProgressRepo()
		ctx := context.Background()

		grade := ""
		for _, t := range topics {
			if t.Grade != grade {
				grade = t.Grade
				fmt.Printf("\n%s\n", grade)
			}
			mark := " "
			if done, err := progress.Completed(ctx, t.ID); err == nil && done {
				mark = "✓"
			}
			fmt.Printf("  [%s] %-40s %2d questions  pass %.0f%%\n",
				mark, t.Name, t.QuestionCount, t.MasteryThreshold*100)
		}
		return nil
	},
}
