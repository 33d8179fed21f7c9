// sim/memstore.go
package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store. Collections are held as JSON snapshots so
// that a loaded aggregate never aliases stored state: mutations made during
// a tick are invisible until saved, matching the on-disk stores.
type MemStore struct {
	mu      sync.RWMutex
	games   map[string][]byte
	teams   map[string][]byte
	players map[string][]byte
	meets   map[string][]byte
	races   map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		games:   make(map[string][]byte),
		teams:   make(map[string][]byte),
		players: make(map[string][]byte),
		meets:   make(map[string][]byte),
		races:   make(map[string][]byte),
	}
}

func putSnapshot[T any](m map[string][]byte, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	m[key] = data
	return nil
}

func getSnapshot[T any](m map[string][]byte, key string) (T, bool, error) {
	var v T
	data, ok := m[key]
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return v, true, nil
}

// SaveGame stores the game aggregate.
func (s *MemStore) SaveGame(_ context.Context, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putSnapshot(s.games, game.ID, game)
}

// LoadGame returns the game aggregate or ErrGameNotFound.
func (s *MemStore) LoadGame(_ context.Context, gameID string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok, err := getSnapshot[*Game](s.games, gameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

// SaveTeams replaces the team collection for a game.
func (s *MemStore) SaveTeams(_ context.Context, gameID string, teams []*Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putSnapshot(s.teams, gameID, teams)
}

// LoadTeams returns the team collection for a game.
func (s *MemStore) LoadTeams(_ context.Context, gameID string) ([]*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams, _, err := getSnapshot[[]*Team](s.teams, gameID)
	return teams, err
}

// SavePlayers replaces the player collection for a game.
func (s *MemStore) SavePlayers(_ context.Context, gameID string, players []*Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putSnapshot(s.players, gameID, players)
}

// LoadPlayers returns the player collection for a game.
func (s *MemStore) LoadPlayers(_ context.Context, gameID string) ([]*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players, _, err := getSnapshot[[]*Player](s.players, gameID)
	return players, err
}

// SaveMeets replaces the meet collection for a game.
func (s *MemStore) SaveMeets(_ context.Context, gameID string, meets []*Meet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putSnapshot(s.meets, gameID, meets)
}

// LoadMeets returns the meet collection for a game.
func (s *MemStore) LoadMeets(_ context.Context, gameID string) ([]*Meet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meets, _, err := getSnapshot[[]*Meet](s.meets, gameID)
	return meets, err
}

// SaveRaces replaces the race collection for a game.
func (s *MemStore) SaveRaces(_ context.Context, gameID string, races []*Race) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return putSnapshot(s.races, gameID, races)
}

// LoadRaces returns the race collection for a game.
func (s *MemStore) LoadRaces(_ context.Context, gameID string) ([]*Race, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	races, _, err := getSnapshot[[]*Race](s.races, gameID)
	return races, err
}
