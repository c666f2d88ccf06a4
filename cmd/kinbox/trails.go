package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kvistgaard/kinbox/internal/platform/tui"
	"github.com/kvistgaard/kinbox/internal/storage"
)

var (
	flagExportID  int64
	flagExportOut string
)

var trailsCmd = &cobra.Command{
	Use:   "trails",
	Short: "Browse recorded sessions interactively",
	Long: `Open an interactive browser over recorded sessions, or export a
single session's trail to a plain-text file.

Browser keys:
  Up/Down (or k/j) - Scroll
  x                - Delete selected session
  q/Esc            - Quit

Examples:
  kinbox trails
  kinbox trails --export 3
  kinbox trails --export 3 --out ./trail-3.csv`,
	Run: runTrails,
}

func init() {
	trailsCmd.Flags().Int64Var(&flagExportID, "export", 0, "Export the trail of the given session ID instead of browsing")
	trailsCmd.Flags().StringVar(&flagExportOut, "out", "", "Output path for --export (default: trail-<id>.csv)")
}

func runTrails(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagExportID > 0 {
		exportTrail(store, flagExportID, flagExportOut)
		return
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exportTrail dumps one session's trail in the same format as the live
// position log.
func exportTrail(store *storage.Store, id int64, out string) {
	trail, err := store.Trail(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving trail: %v\n", err)
		os.Exit(1)
	}
	if len(trail) == 0 {
		fmt.Fprintf(os.Stderr, "Session %d has no trail points.\n", id)
		os.Exit(1)
	}

	if out == "" {
		out = fmt.Sprintf("trail-%d.csv", id)
	}

	if err := storage.AppendTrail(out, trail); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing trail: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d points to %s\n", len(trail), out)
}
