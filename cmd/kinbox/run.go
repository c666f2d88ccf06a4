package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kvistgaard/kinbox/internal/core"
	"github.com/kvistgaard/kinbox/internal/platform/tui"
	"github.com/kvistgaard/kinbox/internal/sim"
	"github.com/kvistgaard/kinbox/internal/storage"
)

var (
	flagConfig string
	flagTrail  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive sandbox session",
	Long: `Start the kinematics sandbox.

Controls:
  Arrows/WASD  - Step the entity (3 cells per press)
  J            - Impulse jump upward
  Space        - Toggle launch trajectory preview
  T            - Toggle tracking line
  Mouse        - Move the cursor, click to mark a target
  P/Esc        - Pause
  Q/Ctrl+C     - Quit (flushes the position log)

On quit the session's position history is appended to the trail file
and saved to the sessions database.

Examples:
  kinbox run
  kinbox run --config ./my-sim.yaml
  kinbox run --trail ./session.csv`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom sandbox config YAML")
	runCmd.Flags().StringVar(&flagTrail, "trail", "position.csv", "Path to the position log appended at session end")
}

func runRun(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sim.SetConfigPath(flagConfig)
	sandbox := sim.New()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the file log still works
		store = nil
	}

	runErr := tui.Run(sandbox, store, cfg, flagTrail)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
