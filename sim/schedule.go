// sim/schedule.go
//
// Yearly schedule generation: one pass over the 52-week calendar, emitting
// meets and races for every competitive week of both seasons. Week-1 races
// are seeded with participants immediately; every later week is populated by
// the orchestrator's one-week lookahead.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// YearSchedule is the output of one year's generation.
type YearSchedule struct {
	Meets []*Meet
	Races []*Race
}

// MeetIDs returns the meet id list stored on the Game aggregate.
func (ys *YearSchedule) MeetIDs() []int64 {
	ids := make([]int64, 0, len(ys.Meets))
	for _, m := range ys.Meets {
		ids = append(ids, m.ID)
	}
	return ids
}

// GenerateYearSchedule builds the full meet/race set for a year. The rng
// drives regular-season groupings; counters stamp fresh ids onto the Game
// aggregate.
func GenerateYearSchedule(rng *PartitionedRNG, counters *IDCounters, teams []*Team,
	players map[int64]*Player, year int) (*YearSchedule, error) {

	teamsByID := make(map[int64]*Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	schedule := &YearSchedule{}
	grouping := rng.ForSubsystem(SubsystemGrouping)

	for week := 1; week <= 52; week++ {
		meets, races, err := GenerateMeetsForWeek(grouping, counters, teams, week, year)
		if err != nil {
			return nil, fmt.Errorf("generating week %d: %w", week, err)
		}

		if week == 1 {
			// First week of the year has no prior tick to populate it.
			racesByID := make(map[int64]*Race, len(races))
			for _, r := range races {
				racesByID[r.ID] = r
			}
			for _, meet := range meets {
				for _, raceID := range meet.RaceIDs {
					if err := PopulateRace(racesByID[raceID], meet, teamsByID, players); err != nil {
						return nil, fmt.Errorf("seeding week 1: %w", err)
					}
				}
			}
		}

		schedule.Meets = append(schedule.Meets, meets...)
		schedule.Races = append(schedule.Races, races...)
	}

	logrus.Infof("year %d schedule: %d meets, %d races for %d teams", year, len(schedule.Meets), len(schedule.Races), len(teams))
	return schedule, nil
}

// TeamSchedule lists the meets a single team attends, in calendar order.
func TeamSchedule(teamID int64, meets []*Meet) []*Meet {
	var out []*Meet
	for _, m := range meets {
		if m.TeamEntry(teamID) != nil {
			out = append(out, m)
		}
	}
	return out
}
