// sim/ratings.go
//
// Pure rating math: discipline composites from weighted attribute sums, the
// activity-blended overall, age-scaled potential, and roster-averaged team
// overalls.

package sim

import "math"

// Attributes is the full 0..100 attribute sheet for an athlete.
type Attributes struct {
	InjuryResistance    float64 `json:"injury_resistance"`
	Consistency         float64 `json:"consistency"`
	Recovery            float64 `json:"recovery"`
	Athleticism         float64 `json:"athleticism"`
	Strength            float64 `json:"strength"`
	Acceleration        float64 `json:"acceleration"`
	Explosiveness       float64 `json:"explosiveness"`
	TopSpeed            float64 `json:"top_speed"`
	StrideFrequency     float64 `json:"stride_frequency"`
	SpeedEndurance      float64 `json:"speed_endurance"`
	SpeedRecovery       float64 `json:"speed_recovery"`
	KickSpeed           float64 `json:"kick_speed"`
	Tactics             float64 `json:"tactics"`
	Pacing              float64 `json:"pacing"`
	Stamina             float64 `json:"stamina"`
	MentalToughness     float64 `json:"mental_toughness"`
	RunningEconomy      float64 `json:"running_economy"`
	TerrainAdaptability float64 `json:"terrain_adaptability"`
}

// Ratings holds the derived scores recomputed whenever attributes change.
type Ratings struct {
	Overall   int `json:"overall"`
	Potential int `json:"potential"`
	SprintOvr int `json:"sprint_ovr"`
	MiddleOvr int `json:"middle_ovr"`
	LongOvr   int `json:"long_ovr"`
}

// SprintOvr is the short-distance composite.
func SprintOvr(a Attributes) int {
	return int(math.Floor(a.TopSpeed*0.45 + a.Explosiveness*0.12 + a.Acceleration*0.23 +
		a.StrideFrequency*0.08 + a.Strength*0.06 + a.Athleticism*0.06))
}

// MiddleOvr is the middle-distance composite.
func MiddleOvr(a Attributes) int {
	return int(math.Floor(a.SpeedEndurance*0.28 + a.KickSpeed*0.16 + a.Pacing*0.14 +
		a.Stamina*0.12 + a.Acceleration*0.08 + a.TopSpeed*0.08 +
		a.SpeedRecovery*0.06 + a.Tactics*0.04 + a.Athleticism*0.04))
}

// LongOvr is the long-distance composite.
func LongOvr(a Attributes) int {
	return int(math.Floor(a.Pacing*0.12 + a.Stamina*0.37 + a.RunningEconomy*0.20 +
		a.MentalToughness*0.14 + a.SpeedEndurance*0.06 + a.SpeedRecovery*0.04 +
		a.TerrainAdaptability*0.01 + a.Athleticism*0.01 + a.Tactics*0.05))
}

// PlayerOverall blends the three composites by the athlete's active
// discipline flags: each active discipline contributes 0.95/N of its
// composite, and 5% is spread evenly across all three regardless of
// activity. Floored and clamped to [0,100].
func PlayerOverall(sub SubArchetype, sprint, middle, long int) int {
	active := 0
	if sub.Sprinter {
		active++
	}
	if sub.Middle {
		active++
	}
	if sub.Long {
		active++
	}

	var primary float64
	if active > 0 {
		primary = 0.95 / float64(active)
	}

	v := 0.0
	if sub.Sprinter {
		v += float64(sprint) * primary
	}
	if sub.Middle {
		v += float64(middle) * primary
	}
	if sub.Long {
		v += float64(long) * primary
	}
	v += float64(sprint+middle+long) / 3.0 * 0.05

	if v < 0 {
		v = 0
	}
	return int(math.Floor(math.Min(100, v)))
}

// PotentialFromYear scales overall by an age multiplier: underclassmen carry
// the most headroom, seniors none.
func PotentialFromYear(year, overall int) int {
	var mult float64
	switch {
	case year <= 1:
		mult = 1.10
	case year == 2:
		mult = 1.05
	case year == 3:
		mult = 1.025
	default:
		mult = 1.0
	}
	return int(math.Floor(math.Min(100, float64(overall)*mult)))
}

// ComputeRatings derives the full Ratings block from attributes, archetype,
// and school year.
func ComputeRatings(a Attributes, sub SubArchetype, year int) Ratings {
	sprint := SprintOvr(a)
	middle := MiddleOvr(a)
	long := LongOvr(a)
	overall := PlayerOverall(sub, sprint, middle, long)
	return Ratings{
		Overall:   overall,
		Potential: PotentialFromYear(year, overall),
		SprintOvr: sprint,
		MiddleOvr: middle,
		LongOvr:   long,
	}
}

// disciplineOvr selects the composite feeding an event's skill score.
func disciplineOvr(r Ratings, d Discipline) int {
	switch d {
	case DisciplineSprint:
		return r.SprintOvr
	case DisciplineMiddle:
		return r.MiddleOvr
	default:
		return r.LongOvr
	}
}

// RecomputeTeamOveralls restores the team-rating invariant: overalls are the
// means over the team's active players. The cross-country composite is zero
// when the team cannot field five cross-country runners.
func RecomputeTeamOveralls(team *Team, players map[int64]*Player) {
	var sprintSum, middleSum, longSum, xcSum int
	var active, xcRunners int

	for _, pid := range team.PlayerIDs {
		p, ok := players[pid]
		if !ok || !p.Active() {
			continue
		}
		active++
		sprintSum += p.Ratings.SprintOvr
		middleSum += p.Ratings.MiddleOvr
		longSum += p.Ratings.LongOvr
		for _, s := range p.Seasons {
			if s == SeasonCrossCountry {
				xcRunners++
				xcSum += p.Ratings.LongOvr
				break
			}
		}
	}

	if active == 0 {
		team.SprintOvr, team.MiddleOvr, team.LongOvr, team.CrossCountryOvr, team.Ovr = 0, 0, 0, 0, 0
		return
	}

	team.SprintOvr = roundDiv(sprintSum, active)
	team.MiddleOvr = roundDiv(middleSum, active)
	team.LongOvr = roundDiv(longSum, active)
	if xcRunners >= 5 {
		team.CrossCountryOvr = roundDiv(xcSum, xcRunners)
	} else {
		team.CrossCountryOvr = 0
	}
	team.Ovr = roundDiv(team.SprintOvr+team.MiddleOvr+team.LongOvr, 3)
}

func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
