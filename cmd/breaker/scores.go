package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayraychen2011/tui-breaker/internal/registry"
	"github.com/rayraychen2011/tui-breaker/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs with stage, difficulty, and date.

Examples:
  breaker scores
  breaker scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	const gameID = "breaker"

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breaker play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Stage", "Preset", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Stage, entry.Preset, dateStr)
	}

	// Aggregates across all runs
	fmt.Println()
	stats, err := store.Stats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  |  Runs: %d  |  Best stage: %d  |  Avg score: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.BestStage, stats.AvgScore)
	}
}
