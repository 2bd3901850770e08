package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show attempt history for a level",
	Long: `Display aggregate stats and the top 10 attempts for a level.

Use "endless" to see the best endless runs (ranked by distance).

Examples:
  dash scores first-steps
  dash scores endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]
	endless := levelID == "endless"

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	attempts, err := store.BestAttempts(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving attempts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Attempt History - %s\n", levelID)
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to start a history!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Progress", "Outcome", "Jumps", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "--------", "-------", "-----", "----")

	for i, a := range attempts {
		progress := fmt.Sprintf("%.1f%%", a.Percent)
		if endless {
			progress = fmt.Sprintf("%dm", int(a.Percent))
		}
		dateStr := a.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-8s  %-6d  %s\n", i+1, progress, a.Outcome, a.Jumps, dateStr)
	}

	fmt.Println()
	best := fmt.Sprintf("%.1f%%", stats.BestPercent)
	if endless {
		best = fmt.Sprintf("%dm", int(stats.BestPercent))
	}
	fmt.Printf("Attempts: %d   Wins: %d   Best: %s   Total jumps: %d\n",
		stats.Attempts, stats.Wins, best, stats.TotalJumps)
}
