// sim/simulator.go
//
// The weekly tick. One call to SimulateWeek loads every aggregate for the
// game, populates next week's races, times and scores the current week,
// advances playoff brackets, rolls the year over when week 52 completes, and
// persists the mutated aggregates. A failure anywhere fails the whole tick
// with nothing persisted.

package sim

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator drives the season week by week against a Store.
type Simulator struct {
	store Store
	names NameSource
}

// NewSimulator creates a Simulator. names feeds recruit generation at year
// rollover.
func NewSimulator(store Store, names NameSource) *Simulator {
	return &Simulator{store: store, names: names}
}

// tickState is the full in-memory object graph for one tick.
type tickState struct {
	game    *Game
	teams   []*Team
	players []*Player

	teamsByID   map[int64]*Team
	playersByID map[int64]*Player
	meetsByID   map[int64]*Meet
	racesByID   map[int64]*Race
}

// SimulateWeek advances the game one week. Concurrent invocations for the
// same game id are unsafe; the caller must not overlap ticks.
func (s *Simulator) SimulateWeek(ctx context.Context, gameID string) error {
	st, err := s.loadTick(ctx, gameID)
	if err != nil {
		return err
	}
	game := st.game

	wp, err := PhaseForWeek(game.CurrentWeek)
	if err != nil {
		return err
	}
	game.Phase = wp.Phase
	logrus.Infof("[game %s] simulating year %d week %d (%s %s)", game.ID, game.CurrentYear, game.CurrentWeek, wp.Season, wp.Phase)

	rng := NewPartitionedRNG(NewTickKey(game.Seed, game.CurrentYear, game.CurrentWeek))

	// Populate next week's races one week ahead so entries reflect current
	// roster eligibility.
	if game.CurrentWeek < 52 {
		if err := s.populateWeek(st, game.CurrentWeek+1); err != nil {
			return fmt.Errorf("populating week %d: %w", game.CurrentWeek+1, err)
		}
	}

	currentMeets := s.meetsForWeek(st, game.CurrentWeek)

	if err := s.simulateRaceTimes(st, currentMeets, rng); err != nil {
		return fmt.Errorf("simulating week %d: %w", game.CurrentWeek, err)
	}

	for _, meet := range currentMeets {
		if err := ScoreMeet(meet, st.racesByID, st.teamsByID, st.playersByID); err != nil {
			return fmt.Errorf("scoring week %d: %w", game.CurrentWeek, err)
		}
	}

	if wp.Phase == PhasePlayoffs {
		if err := s.advancePlayoffs(st, wp, currentMeets, rng); err != nil {
			return fmt.Errorf("advancing playoffs: %w", err)
		}
	}

	finishedWeek := game.CurrentWeek
	game.CurrentWeek++
	if game.CurrentWeek > 52 {
		game.CurrentWeek = 1
		game.CurrentYear++
		if err := s.rolloverYear(st, rng); err != nil {
			return fmt.Errorf("rolling over to year %d: %w", game.CurrentYear, err)
		}
	}
	if wp, err = PhaseForWeek(game.CurrentWeek); err == nil {
		game.Phase = wp.Phase
	}

	return s.persistTick(ctx, st, finishedWeek)
}

func (s *Simulator) loadTick(ctx context.Context, gameID string) (*tickState, error) {
	game, err := s.store.LoadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	teams, err := s.store.LoadTeams(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	players, err := s.store.LoadPlayers(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading players: %w", err)
	}
	meets, err := s.store.LoadMeets(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading meets: %w", err)
	}
	races, err := s.store.LoadRaces(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}

	st := &tickState{
		game:        game,
		teams:       teams,
		players:     players,
		teamsByID:   make(map[int64]*Team, len(teams)),
		playersByID: make(map[int64]*Player, len(players)),
		meetsByID:   make(map[int64]*Meet, len(meets)),
		racesByID:   make(map[int64]*Race, len(races)),
	}
	for _, t := range teams {
		st.teamsByID[t.ID] = t
	}
	for _, p := range players {
		st.playersByID[p.ID] = p
	}
	for _, m := range meets {
		st.meetsByID[m.ID] = m
	}
	for _, r := range races {
		st.racesByID[r.ID] = r
	}
	return st, nil
}

// persistTick writes the mutated aggregates back. Immediately after the
// final playoff week of a phase only game, players, and teams are persisted;
// the meet/race set is untouched until the next block's races fill in.
func (s *Simulator) persistTick(ctx context.Context, st *tickState, finishedWeek int) error {
	if err := s.store.SaveGame(ctx, st.game); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	if err := s.store.SaveTeams(ctx, st.game.ID, st.teams); err != nil {
		return fmt.Errorf("saving teams: %w", err)
	}
	if err := s.store.SavePlayers(ctx, st.game.ID, st.players); err != nil {
		return fmt.Errorf("saving players: %w", err)
	}
	if IsFinalPlayoffWeek(finishedWeek) {
		return nil
	}

	meets := make([]*Meet, 0, len(st.meetsByID))
	for _, m := range st.meetsByID {
		meets = append(meets, m)
	}
	sort.Slice(meets, func(i, j int) bool { return meets[i].ID < meets[j].ID })
	if err := s.store.SaveMeets(ctx, st.game.ID, meets); err != nil {
		return fmt.Errorf("saving meets: %w", err)
	}

	races := make([]*Race, 0, len(st.racesByID))
	for _, r := range st.racesByID {
		races = append(races, r)
	}
	sort.Slice(races, func(i, j int) bool { return races[i].ID < races[j].ID })
	if err := s.store.SaveRaces(ctx, st.game.ID, races); err != nil {
		return fmt.Errorf("saving races: %w", err)
	}
	return nil
}

// meetsForWeek returns the scheduled meets for a week of the current year.
func (s *Simulator) meetsForWeek(st *tickState, week int) []*Meet {
	var out []*Meet
	for _, meetID := range st.game.Schedule {
		meet, ok := st.meetsByID[meetID]
		if !ok {
			continue
		}
		if meet.Week == week && meet.Year == st.game.CurrentYear {
			out = append(out, meet)
		}
	}
	return out
}

// populateWeek fills every not-yet-populated race scheduled for the week.
func (s *Simulator) populateWeek(st *tickState, week int) error {
	for _, meet := range s.meetsForWeek(st, week) {
		if err := validateMeet(meet, st.racesByID); err != nil {
			return err
		}
		for _, raceID := range meet.RaceIDs {
			race := st.racesByID[raceID]
			if race.Populated() {
				continue
			}
			if err := PopulateRace(race, meet, st.teamsByID, st.playersByID); err != nil {
				return err
			}
		}
	}
	return nil
}

// simulateRaceTimes draws finish times for every already-populated
// participant in the week's meets. A participant referencing an unknown
// player is fatal for the tick.
func (s *Simulator) simulateRaceTimes(st *tickState, meets []*Meet, rng *PartitionedRNG) error {
	raceRNG := rng.ForSubsystem(SubsystemRaceTime)
	for _, meet := range meets {
		if err := validateMeet(meet, st.racesByID); err != nil {
			return err
		}
		for _, raceID := range meet.RaceIDs {
			race := st.racesByID[raceID]
			for _, part := range race.Participants {
				player, ok := st.playersByID[part.PlayerID]
				if !ok {
					return fmt.Errorf("%w: player %d in race %d", ErrUnknownPlayer, part.PlayerID, race.ID)
				}
				if part.Time != 0 {
					continue
				}
				t, err := GenerateRaceTime(raceRNG, race.Event, player)
				if err != nil {
					return err
				}
				part.Time = t
			}
		}
	}
	return nil
}

// advancePlayoffs trims the surviving field after a playoff week. After the
// opening round the next round's placeholder meet is regenerated in place,
// scoped to the survivors; after the finals the field resets for the next
// playoff block.
func (s *Simulator) advancePlayoffs(st *tickState, wp WeekPhase, currentMeets []*Meet, rng *PartitionedRNG) error {
	game := st.game

	survivors := make(map[int64]bool)
	for _, meet := range currentMeets {
		winners, err := determineMeetWinners(meet, st.racesByID, st.playersByID, wp.Season)
		if err != nil {
			return err
		}
		for _, id := range winners {
			survivors[id] = true
		}
	}

	remaining := make([]int64, 0, len(survivors))
	for id := range survivors {
		remaining = append(remaining, id)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	game.RemainingTeamIDs = remaining
	logrus.Infof("[game %s] playoff week %d: %d teams advance", game.ID, game.CurrentWeek, len(remaining))

	if IsFirstPlayoffWeek(game.CurrentWeek) {
		return s.regenerateNextRound(st, game.CurrentWeek+1)
	}

	// Finals complete: reset the field for the next playoff block.
	game.RemainingTeamIDs = append([]int64(nil), game.TeamIDs...)
	return nil
}

// regenerateNextRound replaces the placeholder meets of the upcoming playoff
// week with a fresh set scoped to the surviving teams, populated
// immediately (the lookahead for that week has already run).
func (s *Simulator) regenerateNextRound(st *tickState, week int) error {
	game := st.game

	stale := s.meetsForWeek(st, week)
	staleIDs := make(map[int64]bool, len(stale))
	for _, meet := range stale {
		staleIDs[meet.ID] = true
		for _, raceID := range meet.RaceIDs {
			delete(st.racesByID, raceID)
		}
		delete(st.meetsByID, meet.ID)
	}
	kept := game.Schedule[:0]
	for _, id := range game.Schedule {
		if !staleIDs[id] {
			kept = append(kept, id)
		}
	}
	game.Schedule = kept

	survivors := make([]*Team, 0, len(game.RemainingTeamIDs))
	for _, id := range game.RemainingTeamIDs {
		team, ok := st.teamsByID[id]
		if !ok {
			return fmt.Errorf("%w: %d among playoff survivors", ErrUnknownTeam, id)
		}
		survivors = append(survivors, team)
	}

	wp, err := PhaseForWeek(week)
	if err != nil {
		return err
	}
	meet, races := NewMeet(&game.Counters, survivors, week, game.CurrentYear, wp)
	st.meetsByID[meet.ID] = meet
	for _, race := range races {
		st.racesByID[race.ID] = race
	}
	game.Schedule = append(game.Schedule, meet.ID)

	for _, raceID := range meet.RaceIDs {
		if err := PopulateRace(st.racesByID[raceID], meet, st.teamsByID, st.playersByID); err != nil {
			return err
		}
	}
	return nil
}

// determineMeetWinners ranks a playoff meet's teams and advances the top
// quarter (minimum two). Cross-country totals rank ascending, track
// descending. When no team accrued points the two teams with the fastest
// individual finishers advance instead.
func determineMeetWinners(meet *Meet, races map[int64]*Race, players map[int64]*Player, season SeasonType) ([]int64, error) {
	type standing struct {
		teamID int64
		points int
	}
	standings := make([]standing, 0, len(meet.Teams))
	anyPoints := false
	for _, mt := range meet.Teams {
		standings = append(standings, standing{mt.TeamID, mt.Points})
		if mt.Points > 0 {
			anyPoints = true
		}
	}

	if !anyPoints {
		return fallbackWinnersByTime(meet, races, players)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		// Zero points means no score was registered; those teams rank last
		// under both regimes.
		if (a.points == 0) != (b.points == 0) {
			return b.points == 0
		}
		if season == SeasonCrossCountry {
			return a.points < b.points
		}
		return a.points > b.points
	})

	n := (len(standings) + 3) / 4 // ceil(25%)
	if n < 2 {
		n = 2
	}
	if n > len(standings) {
		n = len(standings)
	}

	winners := make([]int64, 0, n)
	for _, st := range standings[:n] {
		winners = append(winners, st.teamID)
	}
	return winners, nil
}

// fallbackWinnersByTime advances the two teams whose fastest individual
// finishers rank best by raw time.
func fallbackWinnersByTime(meet *Meet, races map[int64]*Race, players map[int64]*Player) ([]int64, error) {
	best := make(map[int64]float64)
	for _, raceID := range meet.RaceIDs {
		race, ok := races[raceID]
		if !ok {
			continue
		}
		for _, part := range race.Participants {
			if part.Time <= 0 {
				continue
			}
			player, ok := players[part.PlayerID]
			if !ok {
				return nil, fmt.Errorf("%w: player %d in race %d", ErrUnknownPlayer, part.PlayerID, race.ID)
			}
			if cur, seen := best[player.TeamID]; !seen || part.Time < cur {
				best[player.TeamID] = part.Time
			}
		}
	}
	if len(best) == 0 {
		return nil, fmt.Errorf("%w: meet %d", ErrNoWinners, meet.ID)
	}

	type fastest struct {
		teamID int64
		time   float64
	}
	ranked := make([]fastest, 0, len(best))
	for teamID, t := range best {
		ranked = append(ranked, fastest{teamID, t})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].time != ranked[j].time {
			return ranked[i].time < ranked[j].time
		}
		return ranked[i].teamID < ranked[j].teamID
	})

	n := 2
	if n > len(ranked) {
		n = len(ranked)
	}
	winners := make([]int64, 0, n)
	for _, f := range ranked[:n] {
		winners = append(winners, f.teamID)
	}
	return winners, nil
}
