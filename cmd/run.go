package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mathsala/mathsala/internal/app"
	"github.com/mathsala/mathsala/internal/backend"
	"github.com/mathsala/mathsala/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client, learnerID := backendFromEnv()

	return app.Run(app.Options{
		Client:       client,
		EventRepo:    st.EventRepo(),
		ProgressRepo: st.ProgressRepo(),
		LearnerID:    learnerID,
	})
}

// backendFromEnv builds the API client from MATHSALA_API_URL and
// MATHSALA_USER_ID. Without both, sessions run anonymously against a
// no-op client and only the local mirror records attempts.
func backendFromEnv() (backend.Client, int) {
	baseURL := os.Getenv("MATHSALA_API_URL")
	userID, err := strconv.Atoi(os.Getenv("MATHSALA_USER_ID"))
	if baseURL == "" || err != nil || userID <= 0 {
		return backend.Noop{}, 0
	}
	return backend.NewHTTPClient(baseURL), userID
}
