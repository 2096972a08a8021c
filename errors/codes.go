package errors

type Code string

const (
	ErrBadRequest        Code = "bad-request"
	ErrCommunication     Code = "communication"
	ErrProtocolViolation Code = "protocol-violation"
	ErrFatal             Code = "fatal"
	ErrNotFound          Code = "not-found"
	ErrInternal          Code = "internal"
	ErrUnexpected        Code = "unexpected"
)

type Kind string

const (
	// KindContextAborted is used when we were currently performing an operation but
	// the context got aborted.
	KindContextAborted Kind = "context-aborted"
	KindDecodeJSON     Kind = "parse-request-body-as-json"
	KindEncodeJSON     Kind = "encode-json"
	// KindForbiddenMessage is used when the protocol is being violated due to a
	// message with currently forbidden or unknown type.
	KindForbiddenMessage Kind = "forbidden-message"
	// KindMalformedPayload is used when a message payload does not match the
	// schema for its message type.
	KindMalformedPayload Kind = "malformed-payload"
	// KindMissingField is used when a required field in a request or message
	// payload is not set.
	KindMissingField Kind = "missing-field"
	// KindGameNotFound is used when an unknown game is being requested.
	KindGameNotFound Kind = "game-not-found"
	// KindCompetitionNotFound is used when an unknown competition is being
	// requested.
	KindCompetitionNotFound Kind = "competition-not-found"
	// KindResourceNotFound is used for unknown resources that are too special for
	// creating separate error kinds.
	KindResourceNotFound Kind = "resource-not-found"
	KindUnexpected       Kind = "unexpected"
)
