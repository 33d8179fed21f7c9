// sim/scoring.go
//
// The two scoring regimes. Cross-country is lowest-total-wins over a
// combined post-filter ranking; track & field pays a fixed point table by place.
// Scoring mutates the race, the meet's per-team records, and finally the
// teams' season totals.

package sim

import (
	"fmt"
	"sort"
)

// trackPointsByPlace pays places 1..6; everyone else scores zero.
var trackPointsByPlace = []int{10, 8, 6, 4, 2, 1}

// ScoreMeet scores every race in the meet under the season's regime, then
// folds each team's meet points into its season total.
func ScoreMeet(meet *Meet, races map[int64]*Race, teams map[int64]*Team, players map[int64]*Player) error {
	for _, raceID := range meet.RaceIDs {
		race, ok := races[raceID]
		if !ok {
			return fmt.Errorf("%w: race %d in meet %d", ErrUnknownRace, raceID, meet.ID)
		}
		if !race.Populated() {
			continue
		}

		var err error
		if meet.Season == SeasonCrossCountry {
			err = scoreCrossCountry(race, meet, players)
		} else {
			err = scoreTrackField(race, meet, players)
		}
		if err != nil {
			return fmt.Errorf("scoring race %d in meet %d: %w", raceID, meet.ID, err)
		}
	}

	for _, mt := range meet.Teams {
		team, ok := teams[mt.TeamID]
		if !ok {
			return fmt.Errorf("%w: %d in meet %d", ErrUnknownTeam, mt.TeamID, meet.ID)
		}
		team.Points += mt.Points
	}
	return nil
}

// scoreCrossCountry implements the lowest-total-wins regime: each team's
// fastest seven merge into one combined ranking; runners from teams that
// fielded fewer than five finishers are excluded and score zero; points are
// the 1-based position in the filtered combined pool; a team's meet score is
// the sum over its fastest five.
func scoreCrossCountry(race *Race, meet *Meet, players map[int64]*Player) error {
	byTeam := make(map[int64][]*Participant)
	finishers := make(map[int64]int)
	for _, part := range race.Participants {
		p, ok := players[part.PlayerID]
		if !ok {
			return fmt.Errorf("%w: player %d", ErrUnknownPlayer, part.PlayerID)
		}
		byTeam[p.TeamID] = append(byTeam[p.TeamID], part)
		finishers[p.TeamID]++
	}

	// Fastest seven per team, merged into one combined ranking.
	var combined []*Participant
	topSeven := make(map[int64][]*Participant, len(byTeam))
	for teamID, parts := range byTeam {
		sort.SliceStable(parts, func(i, j int) bool { return parts[i].Time < parts[j].Time })
		if len(parts) > 7 {
			parts = parts[:7]
		}
		topSeven[teamID] = parts
		combined = append(combined, parts...)
	}
	sort.SliceStable(combined, func(i, j int) bool { return combined[i].Time < combined[j].Time })

	// Runners from short-handed teams are disqualified from the ranking.
	rank := 0
	for _, part := range combined {
		teamID := players[part.PlayerID].TeamID
		if finishers[teamID] < 5 {
			part.Scoring.Points = 0
			continue
		}
		rank++
		part.Scoring.Points = rank
	}

	for teamID, parts := range topSeven {
		if finishers[teamID] < 5 {
			continue
		}
		points := 0
		for i, part := range parts {
			part.Scoring.TeamTopSeven = true
			if i < 5 {
				part.Scoring.TeamTopFive = true
				points += part.Scoring.Points
			}
		}

		if rt := race.TeamEntry(teamID); rt != nil {
			rt.Points = points
		}
		if mt := meet.TeamEntry(teamID); mt != nil {
			mt.Points = points
			mt.HasFiveRacers = true
		}
	}
	return nil
}

// scoreTrackField pays the fixed place table by ascending finish time and
// accumulates points onto the race and meet team aggregates.
func scoreTrackField(race *Race, meet *Meet, players map[int64]*Player) error {
	sorted := make([]*Participant, len(race.Participants))
	copy(sorted, race.Participants)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for place, part := range sorted {
		points := 0
		if place < len(trackPointsByPlace) {
			points = trackPointsByPlace[place]
		}
		part.Scoring.Points = points
		if points == 0 {
			continue
		}

		p, ok := players[part.PlayerID]
		if !ok {
			return fmt.Errorf("%w: player %d", ErrUnknownPlayer, part.PlayerID)
		}
		if rt := race.TeamEntry(p.TeamID); rt != nil {
			rt.Points += points
		}
		if mt := meet.TeamEntry(p.TeamID); mt != nil {
			mt.Points += points
		}
	}
	return nil
}
