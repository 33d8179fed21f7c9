package sim

import (
	"context"
	"math/rand"
)

func testContext() context.Context {
	return context.Background()
}

// stubNames is a deterministic NameSource for tests.
type stubNames struct{}

func (stubNames) RandomFullName(rng *rand.Rand) (string, string) {
	return "Test", "Runner"
}

// testLeague is a fully-wired in-memory league for orchestrator tests.
type testLeague struct {
	game    *Game
	teams   []*Team
	players []*Player
	store   *MemStore
}

// buildTestLeague creates numTeams teams of playersPerTeam athletes, all
// sharing one sub-archetype, split evenly across two conferences, with the
// year-1 schedule generated and everything persisted to a MemStore.
func buildTestLeague(numTeams, playersPerTeam, subNum int, years []int) (*testLeague, error) {
	game := &Game{
		ID:          "test-game",
		CurrentYear: 2024,
		CurrentWeek: 1,
		Phase:       PhaseRegular,
		Seed:        42,
	}

	rng := NewPartitionedRNG(NewTickKey(game.Seed, game.CurrentYear, 0))
	sub := SubArchetypeByNum(subNum)

	var teams []*Team
	var players []*Player
	playersByID := make(map[int64]*Player)

	for i := 0; i < numTeams; i++ {
		team := &Team{
			ID:           game.Counters.NextTeamID(),
			School:       "School",
			Abbr:         "SCH",
			ConferenceID: int64(i%2 + 1),
		}
		for j := 0; j < playersPerTeam; j++ {
			year := 1
			if len(years) > 0 {
				year = years[j%len(years)]
			}
			p := NewPlayer(rng, &game.Counters, stubNames{}, team.ID, year, sub, game.CurrentYear)
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

	schedule, err := GenerateYearSchedule(rng, &game.Counters, teams, playersByID, game.CurrentYear)
	if err != nil {
		return nil, err
	}
	game.Schedule = schedule.MeetIDs()

	store := NewMemStore()
	ctx := testContext()
	if err := store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	if err := store.SaveTeams(ctx, game.ID, teams); err != nil {
		return nil, err
	}
	if err := store.SavePlayers(ctx, game.ID, players); err != nil {
		return nil, err
	}
	if err := store.SaveMeets(ctx, game.ID, schedule.Meets); err != nil {
		return nil, err
	}
	if err := store.SaveRaces(ctx, game.ID, schedule.Races); err != nil {
		return nil, err
	}

	return &testLeague{game: game, teams: teams, players: players, store: store}, nil
}

// testAttributes builds a flat attribute sheet at the given level.
func testAttributes(level float64) Attributes {
	return Attributes{
		InjuryResistance:    level,
		Consistency:         level,
		Recovery:            level,
		Athleticism:         level,
		Strength:            level,
		Acceleration:        level,
		Explosiveness:       level,
		TopSpeed:            level,
		StrideFrequency:     level,
		SpeedEndurance:      level,
		SpeedRecovery:       level,
		KickSpeed:           level,
		Tactics:             level,
		Pacing:              level,
		Stamina:             level,
		MentalToughness:     level,
		RunningEconomy:      level,
		TerrainAdaptability: level,
	}
}

// testPlayer builds a distance athlete with a flat attribute sheet.
func testPlayer(id, teamID int64, level float64) *Player {
	sub := SubArchetypeByNum(11) // 5000m/8000m/10000m long-distance profile
	attrs := testAttributes(level)
	return &Player{
		ID:           id,
		TeamID:       teamID,
		FirstName:    "Test",
		LastName:     "Runner",
		Year:         2,
		SubArchetype: sub,
		Attributes:   attrs,
		Ratings:      ComputeRatings(attrs, sub, 2),
		Seasons:      seasonsFor(sub),
		EventTypes:   eventTypesFor(sub),
	}
}
