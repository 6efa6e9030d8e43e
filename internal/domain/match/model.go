package match

import (
	"strings"
	"time"
)

// Provider match states. The upstream mixes short codes and long names, so
// predicates always normalize before comparing.
const (
	StateNotStarted = "NS"
	StateLive       = "LIVE"
	StateHalfTime   = "HT"
	StateFullTime   = "FT"
	StatePostponed  = "POSTPONED"
	StateCancelled  = "CANCELLED"
)

// LiveStates and FinishedStates are the allowlists the named views expand to.
var (
	LiveStates     = []string{StateLive, StateHalfTime, "inplay"}
	UpcomingStates = []string{StateNotStarted, "not_started"}
	FinishedStates = []string{StateFullTime, "finished"}
)

const (
	locationHome = "home"
	locationAway = "away"

	scoreCurrent    = "CURRENT"
	scoreSecondHalf = "2ND_HALF"
)

// Participant is one side of a match as embedded in the stored document.
type Participant struct {
	ID       int64  `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	LogoPath string `bson:"logo_path,omitempty" json:"logo_path,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

// ScoreEntry is one typed score record. A single match carries several
// (running score, half-time score, ...) distinguished by description.
type ScoreEntry struct {
	Description string `bson:"description" json:"description"`
	Location    string `bson:"location" json:"location"`
	Goals       int    `bson:"goals" json:"goals"`
}

// Match is the stored document shape.
type Match struct {
	ID           int64         `bson:"_id" json:"id"`
	LeagueID     int64         `bson:"league_id" json:"league_id"`
	SeasonID     int64         `bson:"season_id,omitempty" json:"season_id,omitempty"`
	StartingAt   time.Time     `bson:"starting_at" json:"starting_at"`
	State        string        `bson:"state" json:"state"`
	Participants []Participant `bson:"participants,omitempty" json:"participants,omitempty"`
	Scores       []ScoreEntry  `bson:"scores,omitempty" json:"scores,omitempty"`
	VenueName    string        `bson:"venue_name,omitempty" json:"venue_name,omitempty"`
	HasLineups   bool          `bson:"has_lineups" json:"has_lineups"`
	HasEvents    bool          `bson:"has_events" json:"has_events"`
}

// TeamSide is the denormalized per-side summary attached to responses.
type TeamSide struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path,omitempty"`
}

// Score is the displayed scoreline, nil when no usable entry exists.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// LeagueInfo is league display metadata resolved from the priority cache.
type LeagueInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path,omitempty"`
	Priority int    `json:"priority"`
	Tier     string `json:"tier,omitempty"`
	Featured bool   `json:"featured"`
}

// Summary is the per-request response shape for one match.
type Summary struct {
	ID         int64      `json:"id"`
	StartingAt time.Time  `json:"starting_at"`
	State      string     `json:"state"`
	HomeTeam   TeamSide   `json:"home_team"`
	AwayTeam   TeamSide   `json:"away_team"`
	Score      *Score     `json:"score,omitempty"`
	League     LeagueInfo `json:"league"`
	Venue      string     `json:"venue,omitempty"`
	HasLineups bool       `json:"has_lineups"`
	HasEvents  bool       `json:"has_events"`
}

func NormalizeState(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsLiveState(state string) bool {
	switch NormalizeState(state) {
	case StateLive, StateHalfTime, "INPLAY", "IN_PLAY", "1H", "2H", "ET":
		return true
	default:
		return false
	}
}

func IsFinishedState(state string) bool {
	switch NormalizeState(state) {
	case StateFullTime, "FINISHED", "AET", "PEN":
		return true
	default:
		return false
	}
}

// Side resolves the participant at the given location. The second return is
// false when the side cannot be identified in the document.
func (m Match) Side(location string) (Participant, bool) {
	for _, p := range m.Participants {
		if strings.EqualFold(p.Location, location) {
			return p, true
		}
	}
	return Participant{}, false
}

func (m Match) HomeSide() (Participant, bool) { return m.Side(locationHome) }
func (m Match) AwaySide() (Participant, bool) { return m.Side(locationAway) }

// DisplayScore picks the scoreline to show: an explicit running score first,
// the second-half score as fallback, otherwise nothing.
func (m Match) DisplayScore() *Score {
	if s, ok := m.scoreByDescription(scoreCurrent); ok {
		return s
	}
	if s, ok := m.scoreByDescription(scoreSecondHalf); ok {
		return s
	}
	return nil
}

func (m Match) scoreByDescription(description string) (*Score, bool) {
	var score Score
	var haveHome, haveAway bool
	for _, entry := range m.Scores {
		if !strings.EqualFold(entry.Description, description) {
			continue
		}
		switch strings.ToLower(entry.Location) {
		case locationHome:
			score.Home = entry.Goals
			haveHome = true
		case locationAway:
			score.Away = entry.Goals
			haveAway = true
		}
	}
	if !haveHome && !haveAway {
		return nil, false
	}
	return &score, true
}
