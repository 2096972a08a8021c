package messages

import (
	"encoding/json"
	"fmt"

	"github.com/GaryWal/gamingplatformfresh/errors"
)

// ParseMessageContainer parses the given raw message into a MessageContainer.
func ParseMessageContainer(raw []byte) (MessageContainer, error) {
	var container MessageContainer
	if err := json.Unmarshal(raw, &container); err != nil {
		return MessageContainer{}, errors.NewJSONError(err, "unmarshal message container", true)
	}
	if container.MessageType == "" {
		return MessageContainer{}, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindMalformedPayload,
			Message: "message container without message type",
		}
	}
	return container, nil
}

// ParseInboundContent parses and validates the content of an inbound message
// based on its type. Unknown inbound message types result in an
// errors.ErrProtocolViolation error, malformed content in an
// errors.ErrBadRequest one.
func ParseInboundContent(container MessageContainer) (interface{}, error) {
	switch container.MessageType {
	case MessageTypeVenueConnect:
		var m MessageVenueConnect
		if err := parseContent(container.Content, &m); err != nil {
			return nil, errors.Wrap(err, "parse venue connect", nil)
		}
		if m.VenueID == "" {
			return nil, errors.NewMissingFieldError("venue_id")
		}
		return m, nil
	case MessageTypeGameRequest:
		var m MessageGameRequest
		if err := parseContent(container.Content, &m); err != nil {
			return nil, errors.Wrap(err, "parse game request", nil)
		}
		if m.GameID == "" {
			return nil, errors.NewMissingFieldError("game_id")
		}
		return m, nil
	case MessageTypeScoreSubmit:
		var m MessageScoreSubmit
		if err := parseContent(container.Content, &m); err != nil {
			return nil, errors.Wrap(err, "parse score submit", nil)
		}
		if m.VenueID == "" {
			return nil, errors.NewMissingFieldError("venue_id")
		}
		if m.GameID == "" {
			return nil, errors.NewMissingFieldError("game_id")
		}
		return m, nil
	}
	return nil, errors.Error{
		Code:    errors.ErrProtocolViolation,
		Kind:    errors.KindForbiddenMessage,
		Message: fmt.Sprintf("forbidden message type: %s", container.MessageType),
		Details: errors.Details{"message_type": container.MessageType},
	}
}

func parseContent(content json.RawMessage, target interface{}) error {
	if len(content) == 0 {
		return errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindMalformedPayload,
			Message: "message without content",
		}
	}
	if err := json.Unmarshal(content, target); err != nil {
		return errors.NewJSONError(err, "unmarshal message content", true)
	}
	return nil
}

// MustMarshalContent converts the passed payload to a JSON raw message and
// panics if marshalling fails. Only use this for payload types that are known
// to marshal.
func MustMarshalContent(payload interface{}) json.RawMessage {
	content, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return content
}
