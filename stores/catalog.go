package stores

import (
	"fmt"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/messages"
)

// GameByID retrieves the game with the given id from the catalog. If the game
// is unknown, an errors.ErrNotFound error is returned.
func (m *Mall) GameByID(gameID messages.GameID) (messages.Game, error) {
	game, ok := m.games[gameID]
	if !ok {
		return messages.Game{}, errors.Error{
			Code:    errors.ErrNotFound,
			Kind:    errors.KindGameNotFound,
			Message: fmt.Sprintf("game %s not found", gameID),
			Details: errors.Details{"game_id": gameID},
		}
	}
	return game, nil
}

// Games returns all games from the catalog in insertion order.
func (m *Mall) Games() []messages.Game {
	games := make([]messages.Game, 0, len(m.gameOrder))
	for _, gameID := range m.gameOrder {
		games = append(games, m.games[gameID])
	}
	return games
}
