package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show high scores",
	Long: `Display the top scores for a player, or for everyone when no player is given.

Examples:
  brickbreaker scores
  brickbreaker scores ann
  brickbreaker scores ann --tui
  brickbreaker scores ann --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores instead of showing them")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, args []string) error {
	player := ""
	if len(args) == 1 {
		player = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(player); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, player, width, height)
	}

	scores, err := store.TopScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	title := "everyone"
	if player != "" {
		title = player
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-6s  %s\n",
			i+1, entry.Player, entry.Score, entry.Level, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(player)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
	return nil
}
