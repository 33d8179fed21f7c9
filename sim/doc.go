// Package sim provides the core season-simulation engine for collegiate
// cross-country and track & field.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - types.go: Game, Team, Player, Meet, Race aggregates and their invariants
//   - season.go: the 52-week season/phase table and the nine race events
//   - simulator.go: the weekly tick (populate, time, score, advance, persist)
//
// # Architecture
//
// The sim package holds the whole engine; supporting pieces live in
// sub-packages:
//   - sim/refdata/: embedded conference/school lists and the weighted name corpus
//
// One simulated week is one call to Simulator.SimulateWeek. A tick loads every
// aggregate for the game, mutates the in-memory graph, and writes the full set
// back at the end. Ticks for the same game must be serialized by the caller;
// there is no lock in the engine.
//
// # Key Interfaces
//
//   - Store: wholesale load/save of the per-game aggregates (memory and
//     JSON-directory implementations provided)
//
// All randomness flows through a PartitionedRNG derived from the game's seed,
// so a given (seed, year, week) tick draws reproducible race times, groupings,
// and recruits.
package sim
