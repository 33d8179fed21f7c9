// sim/setup.go
//
// New-game setup: teams from the selected conferences, rosters, overall
// ratings, and the first year's schedule, all persisted under a fresh
// save-slot id.

package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SchoolInfo identifies one school eligible for team creation.
type SchoolInfo struct {
	Name         string
	Nickname     string
	Abbr         string
	City         string
	State        string
	ConferenceID int64
}

// NewGameConfig are the knobs for creating a save slot.
type NewGameConfig struct {
	Seed           int64
	StartYear      int
	PlayersPerTeam int
	// ConferenceIDs filters the school list; empty means every conference.
	ConferenceIDs []int64
}

// NewGame creates and persists a fresh save slot: one team per selected
// school, a full roster per team, and the year-1 schedule. The first team
// becomes the user-controlled team.
func NewGame(ctx context.Context, store Store, names NameSource, schools []SchoolInfo, cfg NewGameConfig) (*Game, error) {
	if cfg.PlayersPerTeam <= 0 {
		return nil, fmt.Errorf("players per team must be positive, got %d", cfg.PlayersPerTeam)
	}

	selected := filterSchools(schools, cfg.ConferenceIDs)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no schools matched conferences %v", cfg.ConferenceIDs)
	}

	game := &Game{
		ID:          uuid.NewString(),
		CurrentYear: cfg.StartYear,
		CurrentWeek: 1,
		Phase:       PhaseRegular,
		Seed:        cfg.Seed,
	}

	// Setup draws come from the week-0 stream so the first simulated week
	// starts from an untouched tick key.
	rng := NewPartitionedRNG(NewTickKey(cfg.Seed, cfg.StartYear, 0))
	archetypes := rng.ForSubsystem(SubsystemArchetype)
	recruiting := rng.ForSubsystem(SubsystemRecruiting)

	var teams []*Team
	var players []*Player
	playersByID := make(map[int64]*Player)

	for _, school := range selected {
		team := &Team{
			ID:           game.Counters.NextTeamID(),
			School:       school.Name,
			Nickname:     school.Nickname,
			Abbr:         school.Abbr,
			City:         school.City,
			State:        school.State,
			ConferenceID: school.ConferenceID,
		}
		for i := 0; i < cfg.PlayersPerTeam; i++ {
			sub := RollSubArchetype(archetypes)
			year := recruiting.Intn(4) + 1
			p := NewPlayer(rng, &game.Counters, names, team.ID, year, sub, cfg.StartYear)
			players = append(players, p)
			playersByID[p.ID] = p
			team.PlayerIDs = append(team.PlayerIDs, p.ID)
		}
		RecomputeTeamOveralls(team, playersByID)
		teams = append(teams, team)
		game.TeamIDs = append(game.TeamIDs, team.ID)
	}
	game.RemainingTeamIDs = append([]int64(nil), game.TeamIDs...)
	game.SelectedTeamID = teams[0].ID

	schedule, err := GenerateYearSchedule(rng, &game.Counters, teams, playersByID, cfg.StartYear)
	if err != nil {
		return nil, fmt.Errorf("generating initial schedule: %w", err)
	}
	game.Schedule = schedule.MeetIDs()

	if err := store.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("saving game: %w", err)
	}
	if err := store.SaveTeams(ctx, game.ID, teams); err != nil {
		return nil, fmt.Errorf("saving teams: %w", err)
	}
	if err := store.SavePlayers(ctx, game.ID, players); err != nil {
		return nil, fmt.Errorf("saving players: %w", err)
	}
	if err := store.SaveMeets(ctx, game.ID, schedule.Meets); err != nil {
		return nil, fmt.Errorf("saving meets: %w", err)
	}
	if err := store.SaveRaces(ctx, game.ID, schedule.Races); err != nil {
		return nil, fmt.Errorf("saving races: %w", err)
	}

	logrus.Infof("created game %s: %d teams, %d players, %d meets", game.ID, len(teams), len(players), len(schedule.Meets))
	return game, nil
}

func filterSchools(schools []SchoolInfo, conferenceIDs []int64) []SchoolInfo {
	if len(conferenceIDs) == 0 {
		return schools
	}
	wanted := make(map[int64]bool, len(conferenceIDs))
	for _, id := range conferenceIDs {
		wanted[id] = true
	}
	var out []SchoolInfo
	for _, s := range schools {
		if wanted[s.ConferenceID] {
			out = append(out, s)
		}
	}
	return out
}
