// sim/store.go
package sim

import "context"

// Store provides wholesale load/save of a game's aggregates. The engine
// always loads the full set for a game at the start of a tick and writes the
// full set back at the end; a Save replaces the stored collection. There is
// no partial commit or rollback across the five aggregates; a crash between
// saves can leave correlated state behind, and the caller must serialize
// ticks for the same game id.
type Store interface {
	SaveGame(ctx context.Context, game *Game) error
	// LoadGame returns ErrGameNotFound for an unknown game id.
	LoadGame(ctx context.Context, gameID string) (*Game, error)

	SaveTeams(ctx context.Context, gameID string, teams []*Team) error
	LoadTeams(ctx context.Context, gameID string) ([]*Team, error)

	SavePlayers(ctx context.Context, gameID string, players []*Player) error
	LoadPlayers(ctx context.Context, gameID string) ([]*Player, error)

	SaveMeets(ctx context.Context, gameID string, meets []*Meet) error
	LoadMeets(ctx context.Context, gameID string) ([]*Meet, error)

	SaveRaces(ctx context.Context, gameID string, races []*Race) error
	LoadRaces(ctx context.Context, gameID string) ([]*Race, error)
}
