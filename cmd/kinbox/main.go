// kinbox is a terminal kinematics sandbox: one entity under constant
// acceleration, steered interactively inside a bounded arena.
//
// Usage:
//
//	kinbox run               - Start an interactive sandbox session
//	kinbox trails            - Browse recorded sessions interactively
//	kinbox sessions          - List recorded sessions
//	kinbox serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.kinbox/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kinbox",
	Short: "Kinbox - A kinematics sandbox in your terminal",
	Long: `Kinbox is a terminal sandbox for playing with projectile kinematics.
Steer an entity inside a bounded arena, fire impulse jumps, and preview
closed-form trajectories, all at a fixed 60 Hz.

Available commands:
  run       - Start an interactive sandbox session
  trails    - Browse recorded sessions interactively
  sessions  - List recorded sessions
  serve     - Start SSH server for remote sessions

Examples:
  kinbox run
  kinbox run --config ./my-sim.yaml
  kinbox trails
  kinbox serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kinbox/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(trailsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(serveCmd)
}
