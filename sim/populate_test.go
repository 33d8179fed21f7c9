package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPopulateRace_EligibilityFiltering verifies only active athletes whose
// event slate covers the race's event are entered.
func TestPopulateRace_EligibilityFiltering(t *testing.T) {
	// GIVEN one team whose roster mixes eligible, retired, and off-event athletes
	team := &Team{ID: 1}
	players := make(map[int64]*Player)

	distance := testPlayer(1, 1, 50) // sub-archetype 11: distance, both seasons
	players[1] = distance

	retired := testPlayer(2, 1, 50)
	retired.RetiredYear = 2023
	players[2] = retired

	sprinter := testPlayer(3, 1, 50)
	sprinter.SubArchetype = SubArchetypeByNum(1)
	sprinter.Seasons = seasonsFor(sprinter.SubArchetype)
	sprinter.EventTypes = eventTypesFor(sprinter.SubArchetype)
	players[3] = sprinter

	team.PlayerIDs = []int64{1, 2, 3}
	teams := map[int64]*Team{1: team}

	meet := &Meet{ID: 1, Season: SeasonCrossCountry, Teams: []*MeetTeam{{TeamID: 1}}}
	race := &Race{ID: 1, MeetID: 1, Event: Event8000m}

	// WHEN the race is populated
	require.NoError(t, PopulateRace(race, meet, teams, players))

	// THEN only the active distance runner is entered, with zeroed results
	require.Len(t, race.Participants, 1)
	assert.Equal(t, int64(1), race.Participants[0].PlayerID)
	assert.Zero(t, race.Participants[0].Time)
	require.NotNil(t, race.TeamEntry(1))
	assert.Zero(t, race.TeamEntry(1).Points)
}

func TestPopulateRace_UnknownTeamFails(t *testing.T) {
	meet := &Meet{ID: 1, Season: SeasonCrossCountry, Teams: []*MeetTeam{{TeamID: 9}}}
	race := &Race{ID: 1, Event: Event8000m}
	err := PopulateRace(race, meet, map[int64]*Team{}, map[int64]*Player{})
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

// TestBuildHeats_CrossCountryMassStart verifies cross-country always runs a
// single heat regardless of field size.
func TestBuildHeats_CrossCountryMassStart(t *testing.T) {
	race := &Race{Event: Event8000m}
	for i := 0; i < 60; i++ {
		race.Participants = append(race.Participants, &Participant{PlayerID: int64(i + 1)})
	}

	BuildHeats(race, SeasonCrossCountry)

	require.Len(t, race.Heats, 1)
	assert.Len(t, race.Heats[0].ParticipantIdx, 60)
}

// TestBuildHeats_TrackCapacities verifies the per-event heat sizing and the
// round-robin assignment across heats.
func TestBuildHeats_TrackCapacities(t *testing.T) {
	tests := []struct {
		event     EventType
		entrants  int
		wantHeats int
	}{
		{Event100m, 8, 1},
		{Event100m, 9, 2},
		{Event400m, 17, 3},
		{Event1500m, 16, 1},
		{Event5000m, 33, 3},
	}
	for _, tc := range tests {
		race := &Race{Event: tc.event}
		for i := 0; i < tc.entrants; i++ {
			race.Participants = append(race.Participants, &Participant{PlayerID: int64(i + 1)})
		}

		BuildHeats(race, SeasonTrackField)

		require.Len(t, race.Heats, tc.wantHeats, "%s with %d entrants", tc.event, tc.entrants)

		// Round-robin: participant i lands in heat i mod numHeats, and every
		// index appears exactly once.
		seen := make(map[int]bool)
		for h, heat := range race.Heats {
			for _, idx := range heat.ParticipantIdx {
				assert.Equal(t, h, idx%tc.wantHeats)
				assert.False(t, seen[idx])
				seen[idx] = true
			}
		}
		assert.Len(t, seen, tc.entrants)
	}
}

func TestBuildHeats_EmptyRace(t *testing.T) {
	race := &Race{Event: Event200m}
	BuildHeats(race, SeasonTrackField)
	assert.Empty(t, race.Heats)
}
