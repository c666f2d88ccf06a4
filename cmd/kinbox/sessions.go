package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvistgaard/kinbox/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sandbox sessions.

Examples:
  kinbox sessions
  kinbox sessions --db ./sessions.db`,
	Run: runSessions,
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.Sessions(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recorded Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'kinbox run' and move around to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-16s  %-8s  %s\n", "ID", "Label", "Points", "Date")
	fmt.Printf("  %-6s  %-16s  %-8s  %s\n", "--", "-----", "------", "----")

	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-16s  %-8d  %s\n", s.ID, s.Label, s.Points, dateStr)
	}

	fmt.Println()
	longest, err := store.LongestTrail()
	if err == nil && longest > 0 {
		fmt.Printf("Longest trail: %d points\n", longest)
	}
}
