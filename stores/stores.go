// Package stores provides the in-memory stores of the hub. Nothing survives a
// restart. All operations are safe for concurrent use as handlers run in
// parallel goroutines.

package stores

import (
	"sync"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/messages"
)

// Mall implements all store operations.
type Mall struct {
	// games holds the game catalog by id. Immutable after NewMall.
	games map[messages.GameID]messages.Game
	// gameOrder holds the catalog ids in insertion order.
	gameOrder []messages.GameID
	// venues holds all registered venues by id.
	venues map[messages.VenueID]messages.Venue
	// venueOrder holds the venue ids in registration order.
	venueOrder []messages.VenueID
	// venuesMutex locks venues and venueOrder.
	venuesMutex sync.RWMutex
	// competitions holds all competitions by id.
	competitions map[messages.CompetitionID]*messages.Competition
	// competitionOrder holds the competition ids in creation order.
	competitionOrder []messages.CompetitionID
	// competitionsMutex locks competitions and competitionOrder.
	competitionsMutex sync.RWMutex
}

// NewMall creates a new Mall with the given game catalog. The catalog is
// read-only after this call. Games with duplicate or empty ids or negative
// size are rejected.
func NewMall(catalog []messages.Game) (*Mall, error) {
	m := &Mall{
		games:        make(map[messages.GameID]messages.Game, len(catalog)),
		gameOrder:    make([]messages.GameID, 0, len(catalog)),
		venues:       make(map[messages.VenueID]messages.Venue),
		venueOrder:   make([]messages.VenueID, 0),
		competitions: make(map[messages.CompetitionID]*messages.Competition),
	}
	for _, game := range catalog {
		if game.ID == "" {
			return nil, errors.NewMissingFieldError("id")
		}
		if game.Size < 0 {
			return nil, errors.Error{
				Code:    errors.ErrBadRequest,
				Kind:    errors.KindMalformedPayload,
				Message: "game size must not be negative",
				Details: errors.Details{"game_id": game.ID, "size": game.Size},
			}
		}
		if _, ok := m.games[game.ID]; ok {
			return nil, errors.Error{
				Code:    errors.ErrBadRequest,
				Kind:    errors.KindMalformedPayload,
				Message: "duplicate game id in catalog",
				Details: errors.Details{"game_id": game.ID},
			}
		}
		m.games[game.ID] = game
		m.gameOrder = append(m.gameOrder, game.ID)
	}
	return m, nil
}
