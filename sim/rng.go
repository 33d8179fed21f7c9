// sim/rng.go
package sim

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// === TickKey ===

// TickKey identifies a reproducible weekly tick. Two ticks with the same
// TickKey and identical pre-tick state draw identical race times, groupings,
// and recruits.
type TickKey int64

// NewTickKey derives a TickKey from a game's master seed and its position in
// the calendar, so consecutive weeks draw from distinct streams.
func NewTickKey(seed int64, year, week int) TickKey {
	return TickKey(seed + int64(year)*52 + int64(week))
}

// === Subsystem Constants ===

const (
	// SubsystemRaceTime is the RNG subsystem for finish-time noise.
	SubsystemRaceTime = "racetime"

	// SubsystemGrouping is the RNG subsystem for regular-season team shuffles.
	SubsystemGrouping = "grouping"

	// SubsystemRecruiting is the RNG subsystem for recruit attribute rolls.
	SubsystemRecruiting = "recruiting"

	// SubsystemArchetype is the RNG subsystem for sub-archetype rolls.
	SubsystemArchetype = "archetype"

	// SubsystemAvatar is the RNG subsystem for cosmetic avatar generation.
	SubsystemAvatar = "avatar"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived as key XOR fnv1a64(subsystemName). Isolation keeps the
// race-time stream stable even when, say, recruiting consumes a different
// number of draws between runs.
//
// Thread-safety: NOT thread-safe. A tick runs on a single goroutine.
type PartitionedRNG struct {
	key        TickKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a TickKey.
func NewPartitionedRNG(key TickKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the TickKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() TickKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// boxMuller draws one standard-normal sample via the Box-Muller transform.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
