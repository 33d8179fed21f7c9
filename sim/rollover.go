// sim/rollover.go
//
// Year-end roster rollover: seniors retire, classes promote, one freshman
// recruit replaces each graduate slot-for-slot, team overalls are
// recomputed, and the next year's schedule is generated.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// rolloverYear runs the roster transition. The game's year has already been
// incremented; retirees are stamped with the new year as their exit year.
func (s *Simulator) rolloverYear(st *tickState, rng *PartitionedRNG) error {
	game := st.game

	totalGraduates := 0
	for _, team := range st.teams {
		graduates := rolloverTeam(st, team, rng, s.names)
		totalGraduates += graduates
		RecomputeTeamOveralls(team, st.playersByID)
	}
	logrus.Infof("[game %s] year %d rollover: %d seniors graduated across %d teams", game.ID, game.CurrentYear, totalGraduates, len(st.teams))

	schedule, err := GenerateYearSchedule(rng, &game.Counters, st.teams, st.playersByID, game.CurrentYear)
	if err != nil {
		return fmt.Errorf("generating year %d schedule: %w", game.CurrentYear, err)
	}
	for _, meet := range schedule.Meets {
		st.meetsByID[meet.ID] = meet
	}
	for _, race := range schedule.Races {
		st.racesByID[race.ID] = race
	}
	game.Schedule = schedule.MeetIDs()
	game.RemainingTeamIDs = append([]int64(nil), game.TeamIDs...)
	return nil
}

// rolloverTeam retires the team's seniors, promotes everyone else, and
// fills each vacated slot with a freshman recruit inheriting the graduate's
// sub-archetype. Returns the number of graduates. Roster size is conserved.
func rolloverTeam(st *tickState, team *Team, rng *PartitionedRNG, names NameSource) int {
	var retained []int64
	var graduates []*Player

	for _, pid := range team.PlayerIDs {
		p, ok := st.playersByID[pid]
		if !ok || !p.Active() {
			continue
		}
		if p.Year >= 4 {
			p.RetiredYear = st.game.CurrentYear
			graduates = append(graduates, p)
			continue
		}
		p.Year++
		p.Ratings = ComputeRatings(p.Attributes, p.SubArchetype, p.Year)
		retained = append(retained, pid)
	}

	for _, grad := range graduates {
		recruit := NewPlayer(rng, &st.game.Counters, names, team.ID, 1, grad.SubArchetype, st.game.CurrentYear)
		st.players = append(st.players, recruit)
		st.playersByID[recruit.ID] = recruit
		retained = append(retained, recruit.ID)
	}

	team.PlayerIDs = retained
	return len(graduates)
}
