// sim/genplayer.go
//
// Athlete generation: attribute rolls banded by discipline role, rarity
// tiers, naming, and the opaque cosmetic avatar. Used at new-game setup and
// for replacement recruits at year rollover.

package sim

import (
	"math"
	"math/rand"
)

// NameSource produces athlete names. Implemented by refdata's weighted
// corpus; tests may stub it.
type NameSource interface {
	RandomFullName(rng *rand.Rand) (first, last string)
}

// rarityTier shifts the attribute center for standout recruits.
type rarityTier struct {
	p           float64 // draw probability
	medianShift float64
	stdevScale  float64
}

var rarityTiers = []rarityTier{
	{0.60, 0, 1.0},   // common
	{0.25, 6, 1.0},   // notable
	{0.10, 12, 1.1},  // rare
	{0.05, 18, 1.25}, // elite
}

func rollRarity(rng *rand.Rand) rarityTier {
	roll := rng.Float64()
	acc := 0.0
	for _, tier := range rarityTiers {
		acc += tier.p
		if roll <= acc {
			return tier
		}
	}
	return rarityTiers[len(rarityTiers)-1]
}

// attrBand is the sampling band for one attribute under one role.
type attrBand struct {
	low, high, median float64
}

var (
	primaryBand   = attrBand{30, 90, 60}
	secondaryBand = attrBand{20, 75, 42}
	basicBand     = attrBand{25, 75, 48}
)

// primaryAttrs lists, per discipline, the attributes the composite leans on.
// Everything else an archetype has is sampled from the secondary band, and
// the four baseline attributes always come from the basic band.
var primaryAttrs = map[Discipline][]string{
	DisciplineSprint: {"top_speed", "acceleration", "explosiveness", "stride_frequency", "strength"},
	DisciplineMiddle: {"speed_endurance", "kick_speed", "pacing", "stamina", "speed_recovery", "tactics"},
	DisciplineLong:   {"pacing", "stamina", "running_economy", "mental_toughness", "terrain_adaptability", "tactics"},
}

var basicAttrs = map[string]bool{
	"injury_resistance": true,
	"consistency":       true,
	"recovery":          true,
	"athleticism":       true,
}

var allAttrNames = []string{
	"injury_resistance", "consistency", "recovery", "athleticism", "strength",
	"acceleration", "explosiveness", "top_speed", "stride_frequency",
	"speed_endurance", "speed_recovery", "kick_speed", "tactics",
	"pacing", "stamina", "mental_toughness", "running_economy", "terrain_adaptability",
}

// bandFor picks the sampling band for an attribute given the athlete's
// active disciplines: basic attrs use the basic band, attrs primary to any
// active discipline use the primary band, the rest the secondary band.
func bandFor(attr string, sub SubArchetype) attrBand {
	if basicAttrs[attr] {
		return basicBand
	}
	actives := activeDisciplines(sub)
	for _, d := range actives {
		for _, name := range primaryAttrs[d] {
			if name == attr {
				return primaryBand
			}
		}
	}
	return secondaryBand
}

func activeDisciplines(sub SubArchetype) []Discipline {
	var out []Discipline
	if sub.Sprinter {
		out = append(out, DisciplineSprint)
	}
	if sub.Middle {
		out = append(out, DisciplineMiddle)
	}
	if sub.Long {
		out = append(out, DisciplineLong)
	}
	return out
}

// sampleAttr draws a clamped normal within the band, retrying a bounded
// number of times before falling back to the median.
func sampleAttr(rng *rand.Rand, band attrBand, rarity rarityTier) float64 {
	mean := math.Min(band.high, band.median+rarity.medianShift)
	sigma := (band.high - band.low) / 4 * rarity.stdevScale
	for i := 0; i < 12; i++ {
		v := mean + boxMuller(rng)*sigma
		if v >= band.low && v <= band.high {
			return clamp01to100(v)
		}
	}
	return clamp01to100(mean)
}

// ageFactor boosts attributes with school year: older athletes have had more
// seasons of development.
func ageFactor(year int) float64 {
	switch {
	case year <= 1:
		return 1.0
	case year == 2:
		return 1.06
	case year == 3:
		return 1.11
	default:
		return 1.15
	}
}

func clamp01to100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// GenerateAttributes rolls a full attribute sheet for an archetype and year.
func GenerateAttributes(rng *rand.Rand, sub SubArchetype, year int) Attributes {
	rarity := rollRarity(rng)
	age := ageFactor(year)

	values := make(map[string]float64, len(allAttrNames))
	for _, name := range allAttrNames {
		v := sampleAttr(rng, bandFor(name, sub), rarity)
		if !basicAttrs[name] {
			v = clamp01to100(v * age)
		}
		values[name] = v
	}

	return Attributes{
		InjuryResistance:    values["injury_resistance"],
		Consistency:         values["consistency"],
		Recovery:            values["recovery"],
		Athleticism:         values["athleticism"],
		Strength:            values["strength"],
		Acceleration:        values["acceleration"],
		Explosiveness:       values["explosiveness"],
		TopSpeed:            values["top_speed"],
		StrideFrequency:     values["stride_frequency"],
		SpeedEndurance:      values["speed_endurance"],
		SpeedRecovery:       values["speed_recovery"],
		KickSpeed:           values["kick_speed"],
		Tactics:             values["tactics"],
		Pacing:              values["pacing"],
		Stamina:             values["stamina"],
		MentalToughness:     values["mental_toughness"],
		RunningEconomy:      values["running_economy"],
		TerrainAdaptability: values["terrain_adaptability"],
	}
}

var (
	avatarJerseys     = []string{"jersey", "jersey2", "jersey3", "jersey4", "jersey5"}
	avatarAccessories = []string{"none", "headband", "headband-high"}
	avatarSkinTones   = []string{"light", "medium", "tan", "dark"}
	avatarHairStyles  = []string{"short", "buzz", "curly", "flow", "afro"}
)

// generateAvatar rolls the cosmetic spec stored opaquely on the player.
func generateAvatar(rng *rand.Rand) Avatar {
	return Avatar{
		Jersey:    avatarJerseys[rng.Intn(len(avatarJerseys))],
		Accessory: avatarAccessories[rng.Intn(len(avatarAccessories))],
		SkinTone:  avatarSkinTones[rng.Intn(len(avatarSkinTones))],
		HairStyle: avatarHairStyles[rng.Intn(len(avatarHairStyles))],
	}
}

// NewPlayer creates an athlete for a team with the given archetype and
// school year, stamping a fresh id from the game's counters.
func NewPlayer(rng *PartitionedRNG, counters *IDCounters, names NameSource,
	teamID int64, schoolYear int, sub SubArchetype, startYear int) *Player {

	recruiting := rng.ForSubsystem(SubsystemRecruiting)
	first, last := names.RandomFullName(recruiting)

	attrs := GenerateAttributes(recruiting, sub, schoolYear)

	return &Player{
		ID:           counters.NextPlayerID(),
		TeamID:       teamID,
		FirstName:    first,
		LastName:     last,
		Year:         schoolYear,
		StartYear:    startYear,
		SubArchetype: sub,
		Attributes:   attrs,
		Ratings:      ComputeRatings(attrs, sub, schoolYear),
		Seasons:      seasonsFor(sub),
		EventTypes:   eventTypesFor(sub),
		Avatar:       generateAvatar(rng.ForSubsystem(SubsystemAvatar)),
	}
}
