package scoring

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/GaryWal/gamingplatformfresh/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	appended []messages.ScoreSubmission
}

func (m *mockStore) AppendScore(submission messages.ScoreSubmission) {
	m.appended = append(m.appended, submission)
}

func TestAggregator_Submit(t *testing.T) {
	store := &mockStore{}
	aggregator := NewAggregator(store)
	before := time.Now()
	aggregator.Submit("venue-1", "quiz-1", json.RawMessage(`[10,20]`), json.RawMessage(`{"rounds":3}`))
	after := time.Now()

	require.Len(t, store.appended, 1, "submission should be appended exactly once")
	submission := store.appended[0]
	assert.Equal(t, messages.VenueID("venue-1"), submission.VenueID, "venue id should match expected")
	assert.Equal(t, messages.GameID("quiz-1"), submission.GameID, "game id should match expected")
	assert.JSONEq(t, `[10,20]`, string(submission.PlayerScores), "player scores should be passed through untouched")
	assert.JSONEq(t, `{"rounds":3}`, string(submission.GameData), "game data should be passed through untouched")
	assert.False(t, submission.Timestamp.Before(before), "timestamp should not lie in the past")
	assert.False(t, submission.Timestamp.After(after), "timestamp should not lie in the future")
}

func TestAggregator_SubmitNilPayloads(t *testing.T) {
	store := &mockStore{}
	aggregator := NewAggregator(store)
	aggregator.Submit("venue-1", "quiz-1", nil, nil)
	require.Len(t, store.appended, 1, "submission with empty payloads is still appended")
	assert.Nil(t, store.appended[0].PlayerScores, "player scores should stay empty")
}
