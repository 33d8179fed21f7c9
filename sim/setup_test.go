package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchools(n int) []SchoolInfo {
	schools := make([]SchoolInfo, n)
	for i := range schools {
		schools[i] = SchoolInfo{
			Name:         fmt.Sprintf("School %d", i+1),
			Abbr:         fmt.Sprintf("S%d", i+1),
			ConferenceID: int64(i%2 + 1),
		}
	}
	return schools
}

// TestNewGame_CreatesFullLeague verifies a fresh save slot has teams,
// rosters, counters, and a populated week-1 schedule.
func TestNewGame_CreatesFullLeague(t *testing.T) {
	store := NewMemStore()
	ctx := testContext()

	game, err := NewGame(ctx, store, stubNames{}, testSchools(6), NewGameConfig{
		Seed:           42,
		StartYear:      2024,
		PlayersPerTeam: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, 2024, game.CurrentYear)
	assert.Equal(t, 1, game.CurrentWeek)
	assert.Equal(t, PhaseRegular, game.Phase)
	assert.Len(t, game.TeamIDs, 6)
	assert.Equal(t, game.TeamIDs, game.RemainingTeamIDs)
	assert.Equal(t, game.TeamIDs[0], game.SelectedTeamID)

	teams, err := store.LoadTeams(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, teams, 6)
	for _, team := range teams {
		assert.Len(t, team.PlayerIDs, 10)
	}

	players, err := store.LoadPlayers(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, players, 60)
	for _, p := range players {
		assert.True(t, p.Active())
		assert.GreaterOrEqual(t, p.Year, 1)
		assert.LessOrEqual(t, p.Year, 4)
	}

	// Counters resume past everything allocated at setup.
	assert.Equal(t, int64(6), game.Counters.LastTeamID)
	assert.Equal(t, int64(60), game.Counters.LastPlayerID)

	// Week 1 exists and is already populated.
	meets, err := store.LoadMeets(ctx, game.ID)
	require.NoError(t, err)
	races, err := store.LoadRaces(ctx, game.ID)
	require.NoError(t, err)
	racesByID := make(map[int64]*Race, len(races))
	for _, r := range races {
		racesByID[r.ID] = r
	}
	week1 := 0
	for _, m := range meets {
		if m.Week != 1 {
			continue
		}
		week1++
		for _, raceID := range m.RaceIDs {
			assert.True(t, racesByID[raceID].Populated())
		}
	}
	assert.Positive(t, week1)
}

func TestNewGame_ConferenceFilter(t *testing.T) {
	store := NewMemStore()
	game, err := NewGame(testContext(), store, stubNames{}, testSchools(8), NewGameConfig{
		Seed:           1,
		StartYear:      2024,
		PlayersPerTeam: 5,
		ConferenceIDs:  []int64{2},
	})
	require.NoError(t, err)
	assert.Len(t, game.TeamIDs, 4)

	teams, err := store.LoadTeams(testContext(), game.ID)
	require.NoError(t, err)
	for _, team := range teams {
		assert.Equal(t, int64(2), team.ConferenceID)
	}
}

func TestNewGame_Validation(t *testing.T) {
	store := NewMemStore()
	ctx := testContext()

	_, err := NewGame(ctx, store, stubNames{}, testSchools(4), NewGameConfig{PlayersPerTeam: 0})
	assert.Error(t, err)

	_, err = NewGame(ctx, store, stubNames{}, testSchools(4), NewGameConfig{
		PlayersPerTeam: 5,
		ConferenceIDs:  []int64{99},
	})
	assert.Error(t, err)
}
