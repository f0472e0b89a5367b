package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local practice database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No database found at", dbPath)
			return nil
		}

		if !resetForce {
			fmt.Printf("This deletes all local attempts and progress at %s.\nRe-run with --force to confirm.\n", dbPath)
			return nil
		}

		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Deleted", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Actually delete the database")
}
