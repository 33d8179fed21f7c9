package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrislardner/sim-game-sub000/sim"
	"github.com/chrislardner/sim-game-sub000/sim/refdata"
)

var (
	newSeed           int64   // Master seed for the save slot (0 = time-based)
	newPlayersPerTeam int     // Roster size (overrides config)
	newConferences    []int64 // Conference ids to include (overrides config)
)

// newCmd creates a fresh save slot.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new game",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := *leagueCfg
		if newPlayersPerTeam > 0 {
			cfg.PlayersPerTeam = newPlayersPerTeam
		}
		if len(newConferences) > 0 {
			cfg.ConferenceIDs = newConferences
		}

		seed := newSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		schools, err := refdata.Schools()
		if err != nil {
			logrus.Fatalf("Unable to load school data: %v", err)
		}
		infos := make([]sim.SchoolInfo, 0, len(schools))
		for _, s := range schools {
			infos = append(infos, sim.SchoolInfo{
				Name:         s.Name,
				Nickname:     s.Nickname,
				Abbr:         s.Abbr,
				City:         s.City,
				State:        s.State,
				ConferenceID: s.ConferenceID,
			})
		}

		game, err := sim.NewGame(context.Background(), openStore(), nameCorpus(), infos, sim.NewGameConfig{
			Seed:           seed,
			StartYear:      cfg.StartYear,
			PlayersPerTeam: cfg.PlayersPerTeam,
			ConferenceIDs:  cfg.ConferenceIDs,
		})
		if err != nil {
			logrus.Fatalf("Unable to create game: %v", err)
		}
		logrus.Infof("New game ready: %s (year %d, %d teams)", game.ID, game.CurrentYear, len(game.TeamIDs))
	},
}

func init() {
	newCmd.Flags().Int64Var(&newSeed, "seed", 0, "Master RNG seed (0 uses the current time)")
	newCmd.Flags().IntVar(&newPlayersPerTeam, "players-per-team", 0, "Roster size per team")
	newCmd.Flags().Int64SliceVar(&newConferences, "conferences", nil, "Conference ids to include (default all)")
	rootCmd.AddCommand(newCmd)
}
