// breaker is a terminal brick breaker with a horseshoe paddle.
//
// Usage:
//
//	breaker play             - Play directly
//	breaker menu             - Start with the interactive menu
//	breaker serve            - Start SSH server for remote play
//	breaker scores           - Show high scores
//	breaker config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breaker/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayraychen2011/tui-breaker/internal/storage"

	// Import the game to register it
	_ "github.com/rayraychen2011/tui-breaker/internal/games/breaker"
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
	Use:   "breaker",
	Short: "Brick breaker for your terminal",
	Long: `Breaker is a terminal brick breaker. Keep the ball in play with a
horseshoe paddle, clear the wall, and chase the speed boost multiplier.

Available commands:
  play     - Play directly
  menu     - Interactive menu with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  breaker play
  breaker play --difficulty hard
  breaker menu
  breaker serve --ssh :2222
  breaker scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
