package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrislardner/sim-game-sub000/sim"
)

var standingsGameID string // Save slot to display

// standingsCmd prints the current season table for a game.
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show season standings for a game",
	Run: func(cmd *cobra.Command, args []string) {
		if standingsGameID == "" {
			logrus.Fatalf("No game id provided. Use --game.")
		}

		store := openStore()
		ctx := context.Background()
		game, err := store.LoadGame(ctx, standingsGameID)
		if err != nil {
			logrus.Fatalf("Unable to load game: %v", err)
		}
		teams, err := store.LoadTeams(ctx, standingsGameID)
		if err != nil {
			logrus.Fatalf("Unable to load teams: %v", err)
		}
		sim.PrintStandings(game, teams)
	},
}

func init() {
	standingsCmd.Flags().StringVar(&standingsGameID, "game", "", "Game id to display")
	rootCmd.AddCommand(standingsCmd)
}
