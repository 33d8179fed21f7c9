// sim/archetype.go
//
// Sub-archetypes: named specialization profiles that fix an athlete's
// discipline mix and eligible events. Rolled once at creation; recruits
// inherit the archetype of the senior they replace.

package sim

import "math/rand"

// SubArchetype is an event specialization profile.
type SubArchetype struct {
	Num      int         `json:"num"`
	Sprinter bool        `json:"is_sprinter"`
	Middle   bool        `json:"is_middle_distance"`
	Long     bool        `json:"is_long_distance"`
	Events   []EventType `json:"events"`
}

// subArchetypeEntry pairs a profile with its cumulative roll threshold.
type subArchetypeEntry struct {
	chance float64 // cumulative probability bound
	events []EventType
}

// The thirteen sub-archetype profiles. Thresholds are cumulative: a roll in
// (prev, chance] selects the entry. Distance profiles dominate the upper
// range so most rosters can field a full cross-country squad.
var subArchetypeTable = []subArchetypeEntry{
	{0.100, []EventType{Event100m, Event200m, Event400m}},
	{0.200, []EventType{Event100m, Event200m}},
	{0.300, []EventType{Event400m, Event800m, Event1500m}},
	{0.400, []EventType{Event400m, Event800m}},
	{0.450, []EventType{Event800m, Event1500m}},
	{0.550, []EventType{Event1500m, Event3000m}},
	{0.597, []EventType{Event1500m, Event3000m, Event5000m, Event10000m, Event8000m}},
	{0.697, []EventType{Event3000m, Event5000m, Event8000m}},
	{0.797, []EventType{Event1500m, Event3000m, Event8000m}},
	{0.897, []EventType{Event3000m, Event5000m, Event8000m, Event10000m}},
	{0.997, []EventType{Event5000m, Event8000m, Event10000m}},
	{0.999, []EventType{Event400m, Event800m, Event1500m, Event8000m}},
	{1.000, []EventType{Event200m, Event400m, Event800m, Event1500m, Event3000m, Event5000m, Event10000m, Event8000m}},
}

// SubArchetypeByNum builds the profile for a 1-based table index.
func SubArchetypeByNum(num int) SubArchetype {
	if num < 1 {
		num = 1
	}
	if num > len(subArchetypeTable) {
		num = len(subArchetypeTable)
	}
	entry := subArchetypeTable[num-1]
	sub := SubArchetype{Num: num, Events: entry.events}
	switch {
	case num <= 2:
		sub.Sprinter = true
	case num <= 4:
		sub.Sprinter, sub.Middle = true, true
	case num == 5:
		sub.Middle = true
	case num <= 10:
		sub.Middle, sub.Long = true, true
	case num == 11:
		sub.Long = true
	default:
		sub.Sprinter, sub.Middle, sub.Long = true, true, true
	}
	return sub
}

// RollSubArchetype draws a profile from the cumulative table.
func RollSubArchetype(rng *rand.Rand) SubArchetype {
	roll := rng.Float64()
	for i, entry := range subArchetypeTable {
		if roll <= entry.chance {
			return SubArchetypeByNum(i + 1)
		}
	}
	return SubArchetypeByNum(len(subArchetypeTable))
}

// seasonsFor maps an archetype to its competitive seasons: pure track for
// the sprint/middle profiles, both seasons for the distance profiles.
func seasonsFor(sub SubArchetype) []SeasonType {
	if sub.Num <= 6 {
		return []SeasonType{SeasonTrackField}
	}
	return []SeasonType{SeasonCrossCountry, SeasonTrackField}
}

// eventTypesFor intersects the archetype's event list with each season's
// race list.
func eventTypesFor(sub SubArchetype) map[SeasonType][]EventType {
	out := make(map[SeasonType][]EventType, 2)
	for _, season := range []SeasonType{SeasonCrossCountry, SeasonTrackField} {
		for _, event := range sub.Events {
			for _, raceEvent := range RaceEvents[season] {
				if event == raceEvent {
					out[season] = append(out[season], event)
				}
			}
		}
	}
	return out
}
