package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateAttributes_BandsByRole verifies primary attributes for the
// archetype's disciplines sample hotter than off-role ones on average.
func TestGenerateAttributes_BandsByRole(t *testing.T) {
	rng := NewPartitionedRNG(NewTickKey(42, 2024, 0)).ForSubsystem(SubsystemRecruiting)
	sub := SubArchetypeByNum(11) // long distance only

	const n = 500
	var pacing, topSpeed float64
	for i := 0; i < n; i++ {
		attrs := GenerateAttributes(rng, sub, 1)
		// Freshmen get no age boost, so the raw 0..100 bands apply directly.
		assert.GreaterOrEqual(t, attrs.Pacing, 0.0)
		assert.LessOrEqual(t, attrs.Pacing, 100.0)
		pacing += attrs.Pacing
		topSpeed += attrs.TopSpeed
	}
	// Pacing is primary for distance runners, top speed is not.
	assert.Greater(t, pacing/n, topSpeed/n)
}

// TestGenerateAttributes_AgeBoost verifies seniors sample higher than
// freshmen for developed attributes while the baseline four stay unboosted
// in range.
func TestGenerateAttributes_AgeBoost(t *testing.T) {
	sub := SubArchetypeByNum(11)
	const n = 500

	avgStamina := func(year int) float64 {
		rng := NewPartitionedRNG(NewTickKey(7, 2024, 0)).ForSubsystem(SubsystemRecruiting)
		total := 0.0
		for i := 0; i < n; i++ {
			total += GenerateAttributes(rng, sub, year).Stamina
		}
		return total / n
	}

	freshman := avgStamina(1)
	senior := avgStamina(4)
	assert.Greater(t, senior, freshman)
	// 15% boost on the same stream; allow sampling slack.
	assert.InDelta(t, freshman*1.15, senior, freshman*0.05)
}

func TestNewPlayer_FullyInitialized(t *testing.T) {
	rng := NewPartitionedRNG(NewTickKey(42, 2024, 0))
	var counters IDCounters
	sub := SubArchetypeByNum(8)

	p := NewPlayer(rng, &counters, stubNames{}, 3, 2, sub, 2024)

	assert.Positive(t, p.ID)
	assert.Equal(t, int64(3), p.TeamID)
	assert.Equal(t, "Test", p.FirstName)
	assert.Equal(t, "Runner", p.LastName)
	assert.Equal(t, 2, p.Year)
	assert.Equal(t, 2024, p.StartYear)
	assert.True(t, p.Active())
	assert.Equal(t, 8, p.SubArchetype.Num)

	require.NotZero(t, p.Ratings.Overall)
	assert.GreaterOrEqual(t, p.Ratings.Potential, p.Ratings.Overall)

	// Profile 8 races both seasons.
	assert.Equal(t, []SeasonType{SeasonCrossCountry, SeasonTrackField}, p.Seasons)
	assert.True(t, p.EligibleFor(SeasonCrossCountry, Event8000m))
	assert.False(t, p.EligibleFor(SeasonTrackField, Event100m))

	// Avatar fields always land on a known cosmetic choice.
	assert.Contains(t, avatarJerseys, p.Avatar.Jersey)
	assert.Contains(t, avatarSkinTones, p.Avatar.SkinTone)
}

func TestNewPlayer_SequentialIDs(t *testing.T) {
	rng := NewPartitionedRNG(NewTickKey(42, 2024, 0))
	var counters IDCounters
	sub := SubArchetypeByNum(11)

	a := NewPlayer(rng, &counters, stubNames{}, 1, 1, sub, 2024)
	b := NewPlayer(rng, &counters, stubNames{}, 1, 1, sub, 2024)
	assert.Equal(t, a.ID+1, b.ID)
}

func TestRollRarity_Distribution(t *testing.T) {
	rng := NewPartitionedRNG(NewTickKey(42, 2024, 0)).ForSubsystem(SubsystemRecruiting)
	counts := make(map[float64]int)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[rollRarity(rng).medianShift]++
	}
	// Common recruits dominate; elites stay rare but present.
	assert.Greater(t, counts[0], n/2)
	assert.Positive(t, counts[18])
	assert.Greater(t, counts[0], counts[6])
	assert.Greater(t, counts[6], counts[12])
	assert.Greater(t, counts[12], counts[18])
}
