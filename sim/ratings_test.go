package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposites_FlatSheetEqualsLevel(t *testing.T) {
	// A flat sheet at v makes every weighted sum v (weights total 1.0).
	a := testAttributes(80)
	assert.Equal(t, 80, SprintOvr(a))
	assert.Equal(t, 80, MiddleOvr(a))
	assert.Equal(t, 80, LongOvr(a))
}

func TestComposites_RelevantAttributesDominate(t *testing.T) {
	base := testAttributes(50)

	fast := base
	fast.TopSpeed = 95
	assert.Greater(t, SprintOvr(fast), SprintOvr(base))
	assert.Equal(t, LongOvr(fast), LongOvr(base), "top speed must not move the long composite")

	durable := base
	durable.Stamina = 95
	assert.Greater(t, LongOvr(durable), LongOvr(base))
	assert.Equal(t, SprintOvr(durable), SprintOvr(base), "stamina must not move the sprint composite")
}

// TestPlayerOverall_ActivityBlend verifies the primary-weight + 5% spillover
// rule: active disciplines split 0.95, all three share the 0.05 spill.
func TestPlayerOverall_ActivityBlend(t *testing.T) {
	longOnly := SubArchetype{Num: 11, Long: true}
	// sprint=40, middle=40, long=80: 0.95*80 + 0.05*(160/3) = 78.66 -> 78
	assert.Equal(t, 78, PlayerOverall(longOnly, 40, 40, 80))

	allThree := SubArchetype{Num: 13, Sprinter: true, Middle: true, Long: true}
	// Equal composites collapse to the composite value.
	assert.Equal(t, 60, PlayerOverall(allThree, 60, 60, 60))

	// Inactive disciplines only leak through the spill term.
	sprintOnly := SubArchetype{Num: 1, Sprinter: true}
	weakElsewhere := PlayerOverall(sprintOnly, 80, 0, 0)
	strongElsewhere := PlayerOverall(sprintOnly, 80, 100, 100)
	assert.Less(t, strongElsewhere-weakElsewhere, 5)
}

func TestPotentialFromYear(t *testing.T) {
	tests := []struct {
		year, overall, want int
	}{
		{1, 80, 88},  // 80 * 1.10
		{2, 80, 84},  // 80 * 1.05
		{3, 80, 82},  // 80 * 1.025
		{4, 80, 80},  // seniors have no headroom
		{1, 95, 100}, // clamped
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PotentialFromYear(tt.year, tt.overall), "year %d overall %d", tt.year, tt.overall)
	}
}

func TestRecomputeTeamOveralls(t *testing.T) {
	players := map[int64]*Player{
		1: testPlayer(1, 1, 60),
		2: testPlayer(2, 1, 80),
		3: testPlayer(3, 1, 70),
	}
	team := &Team{ID: 1, PlayerIDs: []int64{1, 2, 3}}

	RecomputeTeamOveralls(team, players)
	assert.Equal(t, 70, team.LongOvr)
	// Fewer than five cross-country runners: composite reads zero.
	assert.Equal(t, 0, team.CrossCountryOvr)

	// Retired players drop out of the averages.
	players[2].RetiredYear = 2025
	RecomputeTeamOveralls(team, players)
	assert.Equal(t, 65, team.LongOvr)
}

func TestRecomputeTeamOveralls_CrossCountryNeedsFive(t *testing.T) {
	players := make(map[int64]*Player)
	team := &Team{ID: 1}
	for i := int64(1); i <= 5; i++ {
		players[i] = testPlayer(i, 1, 70)
		team.PlayerIDs = append(team.PlayerIDs, i)
	}
	RecomputeTeamOveralls(team, players)
	assert.Equal(t, 70, team.CrossCountryOvr)
}
