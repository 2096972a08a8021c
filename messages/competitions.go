package messages

import (
	"encoding/json"
	"time"

	"github.com/gobuffalo/nulls"
)

// CompetitionType is the kind of competition.
type CompetitionType string

const (
	// CompetitionTypeTournament is the default competition type.
	CompetitionTypeTournament CompetitionType = "tournament"
)

// CompetitionStatus is the state of a competition.
type CompetitionStatus string

const (
	// CompetitionStatusActive is used for competitions that accept scores.
	CompetitionStatusActive CompetitionStatus = "active"
	// CompetitionStatusClosed is used for finished competitions.
	CompetitionStatusClosed CompetitionStatus = "closed"
)

// ScoreSubmission is a single score report from a venue. PlayerScores and
// GameData are opaque to the hub and stored as received.
type ScoreSubmission struct {
	// VenueID is the id of the submitting venue.
	VenueID VenueID `json:"venue_id"`
	// GameID is the id of the played game.
	GameID GameID `json:"game_id"`
	// PlayerScores is the opaque score payload.
	PlayerScores json.RawMessage `json:"player_scores"`
	// GameData is opaque additional gameplay data.
	GameData json.RawMessage `json:"game_data"`
	// Timestamp is the time the submission was accepted by the hub. Informational
	// only. Ordering within a competition is append order.
	Timestamp time.Time `json:"timestamp"`
}

// Competition holds all information regarding a competition.
type Competition struct {
	// ID is the assigned competition id.
	ID CompetitionID `json:"id"`
	// Name is the human-readable name.
	Name string `json:"name"`
	// GameID is the game this competition is played on.
	GameID GameID `json:"game_id"`
	// Type is the kind of competition.
	Type CompetitionType `json:"type"`
	// Status is the state of the competition.
	Status CompetitionStatus `json:"status"`
	// StartDate is when the competition starts.
	StartDate time.Time `json:"start_date"`
	// EndDate is when the competition ends, if known.
	EndDate nulls.Time `json:"end_date"`
	// CreatedAt is the creation time.
	CreatedAt time.Time `json:"created_at"`
	// Venues are the ids of the enrolled venues.
	Venues []VenueID `json:"venues"`
	// Scores are all accepted score submissions in append order.
	Scores []ScoreSubmission `json:"scores"`
}

// MessageCompetitionsActive is used with MessageTypeCompetitionsActive and
// carries all currently active competitions.
type MessageCompetitionsActive []Competition

// MessageScoreSubmit is used with MessageTypeScoreSubmit when a venue reports
// gameplay scores.
type MessageScoreSubmit struct {
	// VenueID is the id of the submitting venue.
	VenueID VenueID `json:"venue_id"`
	// GameID is the id of the played game.
	GameID GameID `json:"game_id"`
	// PlayerScores is the opaque score payload.
	PlayerScores json.RawMessage `json:"player_scores"`
	// GameData is opaque additional gameplay data.
	GameData json.RawMessage `json:"game_data"`
}

// MessageLeaderboardsUpdated is used with MessageTypeLeaderboardsUpdated and
// broadcast to all connections after every score submission.
type MessageLeaderboardsUpdated struct {
	// GameID is the id of the game scores were submitted for.
	GameID GameID `json:"game_id"`
	// Message is a human-readable status message.
	Message string `json:"message"`
}
