package messages

import (
	"encoding/json"
	"testing"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalContainerMust(t *testing.T, container MessageContainer) []byte {
	raw, err := json.Marshal(container)
	require.NoError(t, err, "marshal container should not fail")
	return raw
}

func TestParseMessageContainer(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		raw := marshalContainerMust(t, MessageContainer{
			MessageType: MessageTypeVenueConnect,
			Content:     MustMarshalContent(MessageVenueConnect{VenueID: "venue-1"}),
		})
		container, err := ParseMessageContainer(raw)
		require.NoError(t, err, "parse should not fail")
		assert.Equal(t, MessageTypeVenueConnect, container.MessageType, "message type should match expected")
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseMessageContainer([]byte("{ not json"))
		require.Error(t, err, "parse should fail")
		e, _ := errors.Cast(err)
		assert.Equal(t, errors.ErrBadRequest, e.Code, "malformed input is blamed on the user")
	})
	t.Run("missing message type", func(t *testing.T) {
		_, err := ParseMessageContainer([]byte(`{"content":{}}`))
		require.Error(t, err, "parse should fail")
		e, _ := errors.Cast(err)
		assert.Equal(t, errors.KindMalformedPayload, e.Kind, "kind should match expected")
	})
}

func TestParseInboundContent(t *testing.T) {
	tests := []struct {
		name        string
		container   MessageContainer
		want        interface{}
		wantErrCode errors.Code
	}{
		{
			name: "venue connect",
			container: MessageContainer{
				MessageType: MessageTypeVenueConnect,
				Content: MustMarshalContent(MessageVenueConnect{
					VenueID:   "venue-1",
					VenueInfo: VenueInfo{Name: "Arcade Hall", Type: "arcade"},
				}),
			},
			want: MessageVenueConnect{
				VenueID:   "venue-1",
				VenueInfo: VenueInfo{Name: "Arcade Hall", Type: "arcade"},
			},
		},
		{
			name: "venue connect without venue id",
			container: MessageContainer{
				MessageType: MessageTypeVenueConnect,
				Content:     MustMarshalContent(MessageVenueConnect{}),
			},
			wantErrCode: errors.ErrBadRequest,
		},
		{
			name: "game request",
			container: MessageContainer{
				MessageType: MessageTypeGameRequest,
				Content: MustMarshalContent(MessageGameRequest{
					GameID:  "racing-1",
					VenueID: "venue-1",
				}),
			},
			want: MessageGameRequest{GameID: "racing-1", VenueID: "venue-1"},
		},
		{
			name: "game request without game id",
			container: MessageContainer{
				MessageType: MessageTypeGameRequest,
				Content:     MustMarshalContent(MessageGameRequest{VenueID: "venue-1"}),
			},
			wantErrCode: errors.ErrBadRequest,
		},
		{
			name: "score submit",
			container: MessageContainer{
				MessageType: MessageTypeScoreSubmit,
				Content: MustMarshalContent(MessageScoreSubmit{
					VenueID:      "venue-1",
					GameID:       "quiz-1",
					PlayerScores: json.RawMessage(`[10,20]`),
				}),
			},
			want: MessageScoreSubmit{
				VenueID:      "venue-1",
				GameID:       "quiz-1",
				PlayerScores: json.RawMessage(`[10,20]`),
			},
		},
		{
			name: "score submit without game id",
			container: MessageContainer{
				MessageType: MessageTypeScoreSubmit,
				Content:     MustMarshalContent(MessageScoreSubmit{VenueID: "venue-1"}),
			},
			wantErrCode: errors.ErrBadRequest,
		},
		{
			name: "score submit with malformed content",
			container: MessageContainer{
				MessageType: MessageTypeScoreSubmit,
				Content:     json.RawMessage(`"not an object"`),
			},
			wantErrCode: errors.ErrBadRequest,
		},
		{
			name: "outbound-only message type",
			container: MessageContainer{
				MessageType: MessageTypeLeaderboardsUpdated,
				Content:     MustMarshalContent(MessageLeaderboardsUpdated{GameID: "quiz-1"}),
			},
			wantErrCode: errors.ErrProtocolViolation,
		},
		{
			name: "unknown message type",
			container: MessageContainer{
				MessageType: "venue:self-destruct",
			},
			wantErrCode: errors.ErrProtocolViolation,
		},
		{
			name: "missing content",
			container: MessageContainer{
				MessageType: MessageTypeVenueConnect,
			},
			wantErrCode: errors.ErrBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInboundContent(tt.container)
			if tt.wantErrCode != "" {
				require.Error(t, err, "parse should fail")
				e, _ := errors.Cast(err)
				assert.Equal(t, tt.wantErrCode, e.Code, "error code should match expected")
				return
			}
			require.NoError(t, err, "parse should not fail but got: %s", errors.Prettify(err))
			assert.Equal(t, tt.want, got, "parsed content should match expected")
		})
	}
}

func TestMessageErrorFromError(t *testing.T) {
	t.Run("user error keeps details", func(t *testing.T) {
		messageError := MessageErrorFromError(errors.NewResourceNotFoundError("Game not found",
			errors.Details{"game_id": "unknown-1"}))
		assert.Equal(t, string(errors.ErrNotFound), messageError.Code, "code should match expected")
		assert.Equal(t, "Game not found", messageError.Message, "message should match expected")
		assert.Equal(t, "unknown-1", messageError.Details["game_id"], "details should be kept")
	})
	t.Run("internal error is masked", func(t *testing.T) {
		messageError := MessageErrorFromError(errors.NewInternalError("broadcast exploded", nil))
		assert.Equal(t, "internal server error", messageError.Message, "internal details should not leak")
		assert.Empty(t, messageError.Details, "details should not leak")
	})
}
