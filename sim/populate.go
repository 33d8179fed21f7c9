// sim/populate.go
//
// Participant population and heat assignment. Races are populated one week
// ahead of being run so entries reflect current roster eligibility.

package sim

import "fmt"

// PopulateRace enters every eligible athlete from the meet's teams into the
// race as a zero-valued participant. No participant cap is enforced. The
// race's per-team aggregates are seeded at the same time.
func PopulateRace(race *Race, meet *Meet, teams map[int64]*Team, players map[int64]*Player) error {
	for _, mt := range meet.Teams {
		team, ok := teams[mt.TeamID]
		if !ok {
			return fmt.Errorf("%w: %d in meet %d", ErrUnknownTeam, mt.TeamID, meet.ID)
		}
		if race.TeamEntry(team.ID) == nil {
			race.Teams = append(race.Teams, &RaceTeam{TeamID: team.ID})
		}
		for _, pid := range team.PlayerIDs {
			p, ok := players[pid]
			if !ok || !p.Active() {
				continue
			}
			if !p.EligibleFor(meet.Season, race.Event) {
				continue
			}
			race.Participants = append(race.Participants, &Participant{PlayerID: p.ID})
		}
	}
	BuildHeats(race, meet.Season)
	return nil
}

// heatCapacity returns the target heat size for an event class: sprint-like
// events run small heats, distance-like events large ones, and cross-country
// is always a single mass start.
func heatCapacity(season SeasonType, event EventType) int {
	if season == SeasonCrossCountry {
		return 0 // mass start, one heat
	}
	switch event {
	case Event100m, Event200m, Event400m, Event800m:
		return 8
	case Event1500m, Event3000m, Event5000m, Event8000m, Event10000m:
		return 16
	default:
		return 12
	}
}

// BuildHeats partitions the race's participants into heats round-robin by
// participant index. Heats are presentation only; scoring never consults
// them.
func BuildHeats(race *Race, season SeasonType) {
	race.Heats = nil
	n := len(race.Participants)
	if n == 0 {
		return
	}

	capacity := heatCapacity(season, race.Event)
	numHeats := 1
	if capacity > 0 {
		numHeats = (n + capacity - 1) / capacity
	}

	race.Heats = make([]Heat, numHeats)
	for i := 0; i < n; i++ {
		h := i % numHeats
		race.Heats[h].ParticipantIdx = append(race.Heats[h].ParticipantIdx, i)
	}
}
