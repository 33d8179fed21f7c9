// sim/errors.go
package sim

import "errors"

// Engine error taxonomy. Invalid-input errors mean the caller constructed an
// inconsistent week or event and must not retry; referential errors fail the
// whole weekly tick with nothing persisted.
var (
	// ErrInvalidWeek is returned for week numbers outside 1..52.
	ErrInvalidWeek = errors.New("invalid week number")

	// ErrUnknownEvent is returned for an event type outside the nine defined.
	ErrUnknownEvent = errors.New("unknown event type")

	// ErrUnknownPlayer is returned when a race participant references a
	// player id that is not in the loaded player set.
	ErrUnknownPlayer = errors.New("participant references unknown player")

	// ErrUnknownRace is returned when a meet references a race id that is
	// not in the loaded race set.
	ErrUnknownRace = errors.New("meet references unknown race")

	// ErrUnknownTeam is returned when a meet or race references a team id
	// that is not in the loaded team set.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrNoWinners is returned when a playoff meet has neither scored teams
	// nor timed runners to fall back on.
	ErrNoWinners = errors.New("cannot determine playoff winners: no points and no timed runners")

	// ErrGameNotFound is returned by stores for an unknown game id.
	ErrGameNotFound = errors.New("game not found")
)
