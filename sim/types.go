// sim/types.go
package sim

// SeasonType distinguishes the two competitive seasons within a game year.
type SeasonType string

const (
	SeasonCrossCountry SeasonType = "cross_country"
	SeasonTrackField   SeasonType = "track_field"
)

// GamePhase is the coarse state of the season state machine.
type GamePhase string

const (
	PhaseRegular   GamePhase = "regular"
	PhasePlayoffs  GamePhase = "playoffs"
	PhaseOffseason GamePhase = "offseason"
)

// IDCounters are the per-game entity id counters. They are persisted as part
// of the Game aggregate so that reloading a save never re-issues an id.
type IDCounters struct {
	LastTeamID   int64 `json:"last_team_id"`
	LastPlayerID int64 `json:"last_player_id"`
	LastMeetID   int64 `json:"last_meet_id"`
	LastRaceID   int64 `json:"last_race_id"`
}

// NextTeamID returns a fresh team id.
func (c *IDCounters) NextTeamID() int64 {
	c.LastTeamID++
	return c.LastTeamID
}

// NextPlayerID returns a fresh player id.
func (c *IDCounters) NextPlayerID() int64 {
	c.LastPlayerID++
	return c.LastPlayerID
}

// NextMeetID returns a fresh meet id.
func (c *IDCounters) NextMeetID() int64 {
	c.LastMeetID++
	return c.LastMeetID
}

// NextRaceID returns a fresh race id.
func (c *IDCounters) NextRaceID() int64 {
	c.LastRaceID++
	return c.LastRaceID
}

// Game is one save slot. It is mutated weekly by the Simulator and persisted
// after every simulated week.
type Game struct {
	ID          string `json:"game_id"` // uuid
	CurrentYear int    `json:"current_year"`
	CurrentWeek int    `json:"current_week"` // 1..52
	Phase       GamePhase `json:"phase"`
	Seed        int64  `json:"seed"` // master RNG seed for the save slot

	TeamIDs          []int64 `json:"team_ids"`
	RemainingTeamIDs []int64 `json:"remaining_team_ids"` // playoff survivors
	SelectedTeamID   int64   `json:"selected_team_id"`

	// Schedule holds the current year's meet ids, replaced at rollover.
	Schedule []int64    `json:"schedule"`
	Counters IDCounters `json:"counters"`
}

// Team owns a roster. Overall ratings are always the roster-weighted average
// of its active (non-retired) players; RecomputeTeamOveralls restores the
// invariant after any roster or rating change.
type Team struct {
	ID           int64  `json:"team_id"`
	School       string `json:"school"`
	Nickname     string `json:"nickname"`
	Abbr         string `json:"abbr"`
	City         string `json:"city"`
	State        string `json:"state"`
	ConferenceID int64  `json:"conference_id"`

	Points int `json:"points"` // cumulative season points

	SprintOvr       int `json:"sprint_ovr"`
	MiddleOvr       int `json:"middle_ovr"`
	LongOvr         int `json:"long_ovr"`
	CrossCountryOvr int `json:"xc_ovr"`
	Ovr             int `json:"ovr"`

	PlayerIDs []int64 `json:"player_ids"`
}

// Player is an athlete. Retired players stay on the roster list with
// RetiredYear set; they are excluded from eligibility and team overalls.
type Player struct {
	ID        int64  `json:"player_id"`
	TeamID    int64  `json:"team_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Year        int `json:"year"`         // 1..4 school year
	StartYear   int `json:"start_year"`   // game year the athlete joined
	RetiredYear int `json:"retired_year"` // 0 while active

	SubArchetype SubArchetype `json:"sub_archetype"`
	Attributes   Attributes   `json:"attributes"`
	Ratings      Ratings      `json:"ratings"`

	// Seasons and EventTypes are derived from the sub-archetype at creation.
	// An athlete only enters events listed under EventTypes[season].
	Seasons    []SeasonType               `json:"seasons"`
	EventTypes map[SeasonType][]EventType `json:"event_types"`

	// Avatar is cosmetic. It is generated once at creation and never read by
	// simulation logic.
	Avatar Avatar `json:"avatar"`
}

// Active reports whether the player is on the competing roster.
func (p *Player) Active() bool {
	return p.RetiredYear == 0
}

// EligibleFor reports whether the player can enter event in the given season.
func (p *Player) EligibleFor(season SeasonType, event EventType) bool {
	for _, e := range p.EventTypes[season] {
		if e == event {
			return true
		}
	}
	return false
}

// Avatar is an opaque cosmetic spec stored on the player record.
type Avatar struct {
	Jersey    string `json:"jersey"`
	Accessory string `json:"accessory"`
	SkinTone  string `json:"skin_tone"`
	HairStyle string `json:"hair_style"`
}

// MeetTeam is a team's per-meet record.
type MeetTeam struct {
	TeamID int64 `json:"team_id"`
	Points int   `json:"points"`
	// HasFiveRacers is cross-country only: team points count in a meet only
	// when at least five of its runners registered times.
	HasFiveRacers bool `json:"has_five_racers"`
}

// Meet is one competition date hosting one or more races among a set of teams.
type Meet struct {
	ID     int64      `json:"meet_id"`
	Week   int        `json:"week"`
	Year   int        `json:"year"`
	Season SeasonType `json:"season"`
	Type   GamePhase  `json:"meet_type"` // regular | playoffs | offseason

	Teams   []*MeetTeam `json:"teams"`
	RaceIDs []int64     `json:"races"`
}

// TeamEntry returns the meet record for a team, or nil.
func (m *Meet) TeamEntry(teamID int64) *MeetTeam {
	for _, mt := range m.Teams {
		if mt.TeamID == teamID {
			return mt
		}
	}
	return nil
}

// Scoring is a participant's per-race scoring sub-record. The top-five and
// top-seven flags are only meaningful for cross-country.
type Scoring struct {
	Points       int  `json:"points"`
	TeamTopFive  bool `json:"team_top_five"`
	TeamTopSeven bool `json:"team_top_seven"`
}

// Participant is one athlete's entry in a race. Time stays 0 until the race
// is simulated.
type Participant struct {
	PlayerID int64   `json:"player_id"`
	Time     float64 `json:"player_time"` // seconds
	Scoring  Scoring `json:"scoring"`
}

// RaceTeam is a team's per-race point aggregate.
type RaceTeam struct {
	TeamID int64 `json:"team_id"`
	Points int   `json:"points"`
}

// Heat groups participant indices for presentation and lane assignment only;
// it has no bearing on result ordering or scoring.
type Heat struct {
	ParticipantIdx []int `json:"participant_idx"`
}

// Race is one event within a meet.
type Race struct {
	ID     int64     `json:"race_id"`
	MeetID int64     `json:"meet_id"`
	Event  EventType `json:"event_type"`

	Participants []*Participant `json:"participants"`
	Teams        []*RaceTeam    `json:"teams"`
	Heats        []Heat         `json:"heats"`
}

// TeamEntry returns the race aggregate for a team, or nil.
func (r *Race) TeamEntry(teamID int64) *RaceTeam {
	for _, rt := range r.Teams {
		if rt.TeamID == teamID {
			return rt
		}
	}
	return nil
}

// Populated reports whether participants have been entered into the race.
func (r *Race) Populated() bool {
	return len(r.Participants) > 0
}
