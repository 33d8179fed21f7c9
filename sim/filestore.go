// sim/filestore.go
package sim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists aggregates as JSON files under dir/<gameID>/. It keeps
// save slots alive between CLI invocations; each Save rewrites the whole
// collection file, matching the wholesale write-back discipline.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(gameID, name string) string {
	return filepath.Join(s.dir, gameID, name+".json")
}

func (s *FileStore) write(gameID, name string, v any) error {
	if err := os.MkdirAll(filepath.Join(s.dir, gameID), 0o755); err != nil {
		return fmt.Errorf("creating game dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(gameID, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) read(gameID, name string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(gameID, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", name, err)
	}
	return true, nil
}

// SaveGame stores the game aggregate.
func (s *FileStore) SaveGame(_ context.Context, game *Game) error {
	return s.write(game.ID, "game", game)
}

// LoadGame returns the game aggregate or ErrGameNotFound.
func (s *FileStore) LoadGame(_ context.Context, gameID string) (*Game, error) {
	var game Game
	ok, err := s.read(gameID, "game", &game)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return &game, nil
}

// SaveTeams replaces the team collection for a game.
func (s *FileStore) SaveTeams(_ context.Context, gameID string, teams []*Team) error {
	return s.write(gameID, "teams", teams)
}

// LoadTeams returns the team collection for a game.
func (s *FileStore) LoadTeams(_ context.Context, gameID string) ([]*Team, error) {
	var teams []*Team
	_, err := s.read(gameID, "teams", &teams)
	return teams, err
}

// SavePlayers replaces the player collection for a game.
func (s *FileStore) SavePlayers(_ context.Context, gameID string, players []*Player) error {
	return s.write(gameID, "players", players)
}

// LoadPlayers returns the player collection for a game.
func (s *FileStore) LoadPlayers(_ context.Context, gameID string) ([]*Player, error) {
	var players []*Player
	_, err := s.read(gameID, "players", &players)
	return players, err
}

// SaveMeets replaces the meet collection for a game.
func (s *FileStore) SaveMeets(_ context.Context, gameID string, meets []*Meet) error {
	return s.write(gameID, "meets", meets)
}

// LoadMeets returns the meet collection for a game.
func (s *FileStore) LoadMeets(_ context.Context, gameID string) ([]*Meet, error) {
	var meets []*Meet
	_, err := s.read(gameID, "meets", &meets)
	return meets, err
}

// SaveRaces replaces the race collection for a game.
func (s *FileStore) SaveRaces(_ context.Context, gameID string, races []*Race) error {
	return s.write(gameID, "races", races)
}

// LoadRaces returns the race collection for a game.
func (s *FileStore) LoadRaces(_ context.Context, gameID string) ([]*Race, error) {
	var races []*Race
	_, err := s.read(gameID, "races", &races)
	return races, err
}

// ListGames returns the game ids present in the store directory.
func (s *FileStore) ListGames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing store dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}
