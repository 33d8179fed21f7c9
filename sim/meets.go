// sim/meets.go
//
// Meet generation for one simulated week: regular-season random grouping,
// conference championships, and finals, each wired to a full race card for
// the season.

package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// GroupTeams shuffles teams and partitions them into groups of roughly
// sqrt(len(teams)). Any group smaller than three is dissolved and its
// members redistributed round-robin, so no meet ever runs with fewer than
// three teams when at least three exist.
func GroupTeams(rng *rand.Rand, teams []*Team) [][]*Team {
	if len(teams) == 0 {
		return nil
	}

	shuffled := make([]*Team, len(teams))
	copy(shuffled, teams)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	size := int(math.Round(math.Sqrt(float64(len(shuffled)))))
	if size < 3 {
		size = 3
	}

	var groups [][]*Team
	for i := 0; i < len(shuffled); i += size {
		end := i + size
		if end > len(shuffled) {
			end = len(shuffled)
		}
		groups = append(groups, shuffled[i:end:end])
	}

	// Dissolve undersized groups into the survivors.
	var kept [][]*Team
	var strays []*Team
	for _, g := range groups {
		if len(g) >= 3 {
			kept = append(kept, g)
		} else {
			strays = append(strays, g...)
		}
	}
	if len(kept) == 0 {
		// Fewer than three teams total: one undersized meet is all we can do.
		return [][]*Team{shuffled}
	}
	for i, t := range strays {
		idx := i % len(kept)
		kept[idx] = append(kept[idx], t)
	}
	return kept
}

// groupByConference buckets teams by conference id for championship week.
func groupByConference(teams []*Team) [][]*Team {
	byConf := make(map[int64][]*Team)
	var order []int64
	for _, t := range teams {
		if _, seen := byConf[t.ConferenceID]; !seen {
			order = append(order, t.ConferenceID)
		}
		byConf[t.ConferenceID] = append(byConf[t.ConferenceID], t)
	}
	groups := make([][]*Team, 0, len(order))
	for _, id := range order {
		groups = append(groups, byConf[id])
	}
	return groups
}

// NewMeet creates a meet for a group of teams with one empty race per event
// in the season's race card.
func NewMeet(counters *IDCounters, group []*Team, week, year int, wp WeekPhase) (*Meet, []*Race) {
	meet := &Meet{
		ID:     counters.NextMeetID(),
		Week:   week,
		Year:   year,
		Season: wp.Season,
		Type:   wp.Phase,
	}
	for _, t := range group {
		meet.Teams = append(meet.Teams, &MeetTeam{TeamID: t.ID})
	}

	races := make([]*Race, 0, len(RaceEvents[wp.Season]))
	for _, event := range RaceEvents[wp.Season] {
		race := &Race{
			ID:     counters.NextRaceID(),
			MeetID: meet.ID,
			Event:  event,
		}
		for _, t := range group {
			race.Teams = append(race.Teams, &RaceTeam{TeamID: t.ID})
		}
		meet.RaceIDs = append(meet.RaceIDs, race.ID)
		races = append(races, race)
	}
	return meet, races
}

// GenerateMeetsForWeek builds all meets and races for one week of the
// calendar. Offseason weeks produce nothing. Playoff meets generated ahead
// of time are placeholders over all teams; the orchestrator regenerates them
// against the surviving field once the prior round resolves.
func GenerateMeetsForWeek(rng *rand.Rand, counters *IDCounters, teams []*Team, week, year int) ([]*Meet, []*Race, error) {
	wp, err := PhaseForWeek(week)
	if err != nil {
		return nil, nil, err
	}

	var groups [][]*Team
	switch {
	case wp.Phase == PhaseOffseason:
		return nil, nil, nil
	case wp.Phase == PhaseRegular:
		groups = GroupTeams(rng, teams)
	case IsFirstPlayoffWeek(week):
		groups = groupByConference(teams)
	default:
		// Finals: every remaining team in one meet.
		groups = [][]*Team{teams}
	}

	var meets []*Meet
	var races []*Race
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		meet, meetRaces := NewMeet(counters, group, week, year, wp)
		meets = append(meets, meet)
		races = append(races, meetRaces...)
	}

	logrus.Debugf("week %d year %d: generated %d meets (%s %s)", week, year, len(meets), wp.Season, wp.Phase)
	return meets, races, nil
}

// validateMeet checks the baseline meet contract: every listed team appears
// in at least one of the meet's races.
func validateMeet(meet *Meet, races map[int64]*Race) error {
	for _, raceID := range meet.RaceIDs {
		if _, ok := races[raceID]; !ok {
			return fmt.Errorf("%w: race %d in meet %d", ErrUnknownRace, raceID, meet.ID)
		}
	}
	return nil
}
