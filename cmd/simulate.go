package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrislardner/sim-game-sub000/sim"
)

var (
	simGameID string // Save slot to simulate
	simWeeks  int    // Number of weeks to advance
)

// simulateCmd advances a game one or more weeks.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one or more weeks of the season",
	Run: func(cmd *cobra.Command, args []string) {
		if simGameID == "" {
			logrus.Fatalf("No game id provided. Use --game.")
		}
		if simWeeks < 1 {
			logrus.Fatalf("Weeks must be at least 1, got %d", simWeeks)
		}

		store := openStore()
		simulator := sim.NewSimulator(store, nameCorpus())
		ctx := context.Background()

		// Ticks for a game must never overlap; running them in sequence
		// here is that serialization.
		for i := 0; i < simWeeks; i++ {
			if err := simulator.SimulateWeek(ctx, simGameID); err != nil {
				logrus.Fatalf("Week simulation failed: %v", err)
			}
		}

		game, err := store.LoadGame(ctx, simGameID)
		if err != nil {
			logrus.Fatalf("Unable to reload game: %v", err)
		}
		teams, err := store.LoadTeams(ctx, simGameID)
		if err != nil {
			logrus.Fatalf("Unable to reload teams: %v", err)
		}
		sim.PrintStandings(game, teams)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simGameID, "game", "", "Game id to simulate")
	simulateCmd.Flags().IntVar(&simWeeks, "weeks", 1, "Number of weeks to simulate")
	rootCmd.AddCommand(simulateCmd)
}
