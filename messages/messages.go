// Package messages provides the event contracts for the persistent venue
// connections as well as basic message functionality.

package messages

import (
	"encoding/json"

	"github.com/GaryWal/gamingplatformfresh/errors"
)

// MessageType is the type of message and serves for using the correct parsing
// method.
type MessageType string

// GameID identifies a game in the catalog.
type GameID string

// VenueID identifies a venue.
type VenueID string

// CompetitionID identifies a competition.
type CompetitionID string

// MessageContainer is a container for all messages that are sent and received.
// It holds some meta information as well as the actual payload.
type MessageContainer struct {
	// MessageType is the type of the message.
	MessageType MessageType `json:"message_type"`
	// VenueID is the optional id of the venue the message belongs to.
	VenueID VenueID `json:"venue_id,omitempty"`
	// Content is the actual message content.
	Content json.RawMessage `json:"content,omitempty"`
}

// All message types.
const (
	// MessageTypeVenueConnect is received with MessageVenueConnect when a venue
	// identifies itself on an open connection.
	MessageTypeVenueConnect MessageType = "venue:connect"
	// MessageTypeGamesAvailable is sent with MessageGamesAvailable to a single
	// connection after the venue identified itself.
	MessageTypeGamesAvailable MessageType = "games:available"
	// MessageTypeCompetitionsActive is sent with MessageCompetitionsActive to a
	// single connection after the venue identified itself.
	MessageTypeCompetitionsActive MessageType = "competitions:active"
	// MessageTypeGameRequest is received with MessageGameRequest when a venue
	// wants to download a game.
	MessageTypeGameRequest MessageType = "game:request"
	// MessageTypeGameDownload is sent with MessageGameDownload as the reply to a
	// successful MessageTypeGameRequest.
	MessageTypeGameDownload MessageType = "game:download"
	// MessageTypeError is used for error messages. The content is being set to
	// the detailed error.
	MessageTypeError MessageType = "error"
	// MessageTypeScoreSubmit is received with MessageScoreSubmit when a venue
	// reports gameplay scores.
	MessageTypeScoreSubmit MessageType = "score:submit"
	// MessageTypeLeaderboardsUpdated is broadcast with
	// MessageLeaderboardsUpdated to all connections after every score
	// submission.
	MessageTypeLeaderboardsUpdated MessageType = "leaderboards:updated"
)

// MessageError is used with MessageTypeError for errors that need to be sent
// to venues.
type MessageError struct {
	// Code is the error code from errors.Error.
	Code string `json:"code"`
	// Err is the error from errors.Error.
	Err string `json:"err,omitempty"`
	// Message is the message from errors.Error.
	Message string `json:"message"`
	// Details are error details from errors.Error.
	Details map[string]interface{} `json:"details,omitempty"`
}

// MessageErrorFromError creates a MessageError from the given error. Details
// are only included for errors the user is to blame for. Everything else is
// reported as a plain internal server error.
func MessageErrorFromError(err error) MessageError {
	e, _ := errors.Cast(err)
	if !errors.BlameUser(err) {
		return MessageError{
			Code:    string(e.Code),
			Message: "internal server error",
		}
	}
	return MessageError{
		Code:    string(e.Code),
		Err:     e.Error(),
		Message: e.Message,
		Details: e.Details,
	}
}
