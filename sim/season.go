// sim/season.go
//
// The 52-week season calendar and the nine defined race events. Every other
// part of the engine derives season, phase, and event lists from the tables
// here; a week or event outside these tables is an invalid input.

package sim

import "fmt"

// EventType names one of the nine defined race events.
type EventType string

const (
	Event100m   EventType = "100m"
	Event200m   EventType = "200m"
	Event400m   EventType = "400m"
	Event800m   EventType = "800m"
	Event1500m  EventType = "1500m"
	Event3000m  EventType = "3000m"
	Event5000m  EventType = "5000m"
	Event8000m  EventType = "8000m"
	Event10000m EventType = "10000m"
)

// RaceEvents lists the events run in each season. Cross-country is a single
// mass-start 8k; track meets run the remaining eight events.
var RaceEvents = map[SeasonType][]EventType{
	SeasonCrossCountry: {Event8000m},
	SeasonTrackField: {
		Event100m, Event200m, Event400m, Event800m,
		Event1500m, Event3000m, Event5000m, Event10000m,
	},
}

// WeekPhase is the (season, phase) pair a week maps to.
type WeekPhase struct {
	Season SeasonType
	Phase  GamePhase
}

// phaseSpan is one contiguous block of the 52-week calendar.
type phaseSpan struct {
	startWeek, endWeek int
	season             SeasonType
	phase              GamePhase
}

// The fixed season calendar. Spans are inclusive and cover weeks 1..52 with
// no gaps: XC regular/playoffs/offseason, then two track blocks.
var seasonCalendar = []phaseSpan{
	{1, 9, SeasonCrossCountry, PhaseRegular},
	{10, 11, SeasonCrossCountry, PhasePlayoffs},
	{12, 14, SeasonCrossCountry, PhaseOffseason},
	{15, 24, SeasonTrackField, PhaseRegular},
	{25, 26, SeasonTrackField, PhasePlayoffs},
	{27, 29, SeasonTrackField, PhaseOffseason},
	{30, 39, SeasonTrackField, PhaseRegular},
	{40, 41, SeasonTrackField, PhasePlayoffs},
	{42, 52, SeasonTrackField, PhaseOffseason},
}

// PhaseForWeek maps a week number (1..52) to its season and phase.
func PhaseForWeek(week int) (WeekPhase, error) {
	for _, span := range seasonCalendar {
		if week >= span.startWeek && week <= span.endWeek {
			return WeekPhase{Season: span.season, Phase: span.phase}, nil
		}
	}
	return WeekPhase{}, fmt.Errorf("%w: %d", ErrInvalidWeek, week)
}

// IsFirstPlayoffWeek reports whether week opens a playoff block (conference
// championships).
func IsFirstPlayoffWeek(week int) bool {
	return week == 10 || week == 25 || week == 40
}

// IsFinalPlayoffWeek reports whether week closes a playoff block (finals).
func IsFinalPlayoffWeek(week int) bool {
	return week == 11 || week == 26 || week == 41
}
