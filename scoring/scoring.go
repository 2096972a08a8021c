// Package scoring aggregates score submissions from venues into competitions.
package scoring

import (
	"encoding/json"
	"time"

	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/messages"
	"go.uber.org/zap"
)

// Store is where accepted score submissions are appended to.
type Store interface {
	// AppendScore appends the given submission to every matching competition.
	AppendScore(submission messages.ScoreSubmission)
}

// Aggregator accepts score submissions and appends them to matching
// competitions.
type Aggregator struct {
	store Store
}

// NewAggregator creates a new Aggregator that appends to the given Store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Submit builds a score submission with the current time and appends it to
// every matching competition. Player scores and game data are stored opaquely
// and never interpreted. A submission matching no competition is a silent
// no-op, not an error.
func (a *Aggregator) Submit(venueID messages.VenueID, gameID messages.GameID,
	playerScores json.RawMessage, gameData json.RawMessage) {
	submission := messages.ScoreSubmission{
		VenueID:      venueID,
		GameID:       gameID,
		PlayerScores: playerScores,
		GameData:     gameData,
		Timestamp:    time.Now(),
	}
	a.store.AppendScore(submission)
	logging.ScoringLogger.Info("score submission processed",
		zap.String("venue_id", string(venueID)),
		zap.String("game_id", string(gameID)))
}
