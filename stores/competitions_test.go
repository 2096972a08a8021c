package stores

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/messages"
	"github.com/gobuffalo/nulls"
	"github.com/stretchr/testify/suite"
)

type competitionsTestSuite struct {
	suite.Suite
	mall  *Mall
	venue messages.Venue
}

func (suite *competitionsTestSuite) SetupTest() {
	mall, err := NewMall(testCatalog())
	suite.Require().Nilf(err, "new mall should not fail but got: %s", errors.Prettify(err))
	suite.mall = mall
	suite.venue, err = suite.mall.RegisterVenue("Arcade Hall", "arcade", nulls.String{})
	suite.Require().Nilf(err, "register venue should not fail but got: %s", errors.Prettify(err))
}

func (suite *competitionsTestSuite) createCompetition(name string, gameID messages.GameID) messages.Competition {
	competition, err := suite.mall.CreateCompetition(name, gameID, "", time.Now(), nulls.Time{})
	suite.Require().Nilf(err, "create competition should not fail but got: %s", errors.Prettify(err))
	return competition
}

func (suite *competitionsTestSuite) submission(venueID messages.VenueID, gameID messages.GameID,
	playerScores string) messages.ScoreSubmission {
	return messages.ScoreSubmission{
		VenueID:      venueID,
		GameID:       gameID,
		PlayerScores: json.RawMessage(playerScores),
		Timestamp:    time.Now(),
	}
}

func (suite *competitionsTestSuite) TestCreateCompetition() {
	start := time.Now()
	end := nulls.NewTime(start.Add(24 * time.Hour))
	competition, err := suite.mall.CreateCompetition("Friday Cup", "quiz-1", "", start, end)
	suite.Require().Nilf(err, "create should not fail but got: %s", errors.Prettify(err))
	suite.Assert().True(strings.HasPrefix(string(competition.ID), "comp-"), "competition id should carry prefix")
	suite.Assert().Equal(messages.CompetitionTypeTournament, competition.Type, "type should default to tournament")
	suite.Assert().Equal(messages.CompetitionStatusActive, competition.Status, "competition should start active")
	suite.Assert().Empty(competition.Venues, "enrolled venues should start empty")
	suite.Assert().Empty(competition.Scores, "scores should start empty")
	suite.Assert().Equal(end, competition.EndDate, "end date should match expected")
}

func (suite *competitionsTestSuite) TestCreateCompetitionValidation() {
	_, err := suite.mall.CreateCompetition("", "quiz-1", "", time.Now(), nulls.Time{})
	suite.Require().NotNil(err, "create without name should fail")
	_, err = suite.mall.CreateCompetition("Friday Cup", "", "", time.Now(), nulls.Time{})
	suite.Require().NotNil(err, "create without game id should fail")
	_, err = suite.mall.CreateCompetition("Friday Cup", "unknown-1", "", time.Now(), nulls.Time{})
	suite.Require().NotNil(err, "create with unknown game id should fail")
	e, _ := errors.Cast(err)
	suite.Assert().Equal(errors.ErrBadRequest, e.Code, "unknown game is blamed on the caller")
}

func (suite *competitionsTestSuite) TestUniqueIDsForSameInstantCreation() {
	first := suite.createCompetition("Cup A", "quiz-1")
	second := suite.createCompetition("Cup B", "quiz-1")
	suite.Assert().NotEqual(first.ID, second.ID, "competition ids should be unique")
}

func (suite *competitionsTestSuite) TestActiveCompetitionsFilter() {
	created := suite.createCompetition("Friday Cup", "quiz-1")
	// Close the competition directly in the store as no operation closes
	// competitions yet.
	suite.mall.competitionsMutex.Lock()
	suite.mall.competitions[created.ID].Status = messages.CompetitionStatusClosed
	suite.mall.competitionsMutex.Unlock()
	open := suite.createCompetition("Saturday Cup", "racing-1")
	active := suite.mall.ActiveCompetitions()
	suite.Require().Len(active, 1, "only active competitions should be listed")
	suite.Assert().Equal(open.ID, active[0].ID, "active competition should match expected")
	suite.Assert().Len(suite.mall.Competitions(), 2, "all competitions should still be listed")
}

func (suite *competitionsTestSuite) TestEnrollVenue() {
	competition := suite.createCompetition("Friday Cup", "quiz-1")
	err := suite.mall.EnrollVenue(competition.ID, suite.venue.ID)
	suite.Require().Nilf(err, "enroll should not fail but got: %s", errors.Prettify(err))
	// Enrolling again must not duplicate.
	err = suite.mall.EnrollVenue(competition.ID, suite.venue.ID)
	suite.Require().Nilf(err, "re-enroll should not fail but got: %s", errors.Prettify(err))
	competitions := suite.mall.Competitions()
	suite.Require().Len(competitions, 1, "competition should be stored")
	suite.Assert().Equal([]messages.VenueID{suite.venue.ID}, competitions[0].Venues,
		"venue should be enrolled exactly once")
}

func (suite *competitionsTestSuite) TestEnrollVenueUnknownCompetition() {
	err := suite.mall.EnrollVenue("comp-unknown", suite.venue.ID)
	suite.Require().NotNil(err, "enroll in unknown competition should fail")
	e, _ := errors.Cast(err)
	suite.Assert().Equal(errors.ErrNotFound, e.Code, "error code should match expected")
	suite.Assert().Equal(errors.KindCompetitionNotFound, e.Kind, "error kind should match expected")
}

func (suite *competitionsTestSuite) TestEnrollUnknownVenue() {
	competition := suite.createCompetition("Friday Cup", "quiz-1")
	err := suite.mall.EnrollVenue(competition.ID, "venue-unknown")
	suite.Require().NotNil(err, "enroll of unknown venue should fail")
	e, _ := errors.Cast(err)
	suite.Assert().Equal(errors.ErrNotFound, e.Code, "error code should match expected")
}

func (suite *competitionsTestSuite) TestAppendScoreMatching() {
	matching := suite.createCompetition("Quiz Cup", "quiz-1")
	otherGame := suite.createCompetition("Racing Cup", "racing-1")
	notEnrolled := suite.createCompetition("Quiz Cup Two", "quiz-1")
	suite.Require().Nil(suite.mall.EnrollVenue(matching.ID, suite.venue.ID), "enroll should not fail")
	suite.Require().Nil(suite.mall.EnrollVenue(otherGame.ID, suite.venue.ID), "enroll should not fail")

	suite.mall.AppendScore(suite.submission(suite.venue.ID, "quiz-1", `[10,20]`))

	byID := make(map[messages.CompetitionID]messages.Competition)
	for _, competition := range suite.mall.Competitions() {
		byID[competition.ID] = competition
	}
	suite.Assert().Len(byID[matching.ID].Scores, 1, "matching competition should receive the score")
	suite.Assert().Empty(byID[otherGame.ID].Scores, "competition for other game should not receive the score")
	suite.Assert().Empty(byID[notEnrolled.ID].Scores, "competition without enrollment should not receive the score")
}

func (suite *competitionsTestSuite) TestAppendScoreFanOut() {
	// Two concurrent tournaments for the same game both receive the submission.
	first := suite.createCompetition("Quiz Cup", "quiz-1")
	second := suite.createCompetition("Quiz Masters", "quiz-1")
	suite.Require().Nil(suite.mall.EnrollVenue(first.ID, suite.venue.ID), "enroll should not fail")
	suite.Require().Nil(suite.mall.EnrollVenue(second.ID, suite.venue.ID), "enroll should not fail")

	suite.mall.AppendScore(suite.submission(suite.venue.ID, "quiz-1", `[1]`))

	for _, competition := range suite.mall.Competitions() {
		suite.Assert().Len(competition.Scores, 1, "competition %s should receive the score", competition.ID)
	}
}

func (suite *competitionsTestSuite) TestAppendScoreOrdering() {
	competition := suite.createCompetition("Quiz Cup", "quiz-1")
	suite.Require().Nil(suite.mall.EnrollVenue(competition.ID, suite.venue.ID), "enroll should not fail")
	payloads := []string{`[1]`, `[2]`, `[3]`, `[4]`}
	for _, payload := range payloads {
		suite.mall.AppendScore(suite.submission(suite.venue.ID, "quiz-1", payload))
	}
	// A non-matching submission in between must not land anywhere.
	suite.mall.AppendScore(suite.submission(suite.venue.ID, "racing-1", `[99]`))

	competitions := suite.mall.Competitions()
	suite.Require().Len(competitions, 1, "competition should be stored")
	suite.Require().Len(competitions[0].Scores, len(payloads), "score count should match matching submissions")
	for i, payload := range payloads {
		suite.Assert().JSONEq(payload, string(competitions[0].Scores[i].PlayerScores),
			"score %d should be stored in submission order", i)
	}
}

func (suite *competitionsTestSuite) TestAppendScoreOpaquePayload() {
	competition := suite.createCompetition("Quiz Cup", "quiz-1")
	suite.Require().Nil(suite.mall.EnrollVenue(competition.ID, suite.venue.ID), "enroll should not fail")
	// Payload shape is not interpreted, whatever arrives is stored.
	submission := messages.ScoreSubmission{
		VenueID:      suite.venue.ID,
		GameID:       "quiz-1",
		PlayerScores: json.RawMessage(`{"weird":{"nested":["shape"]}}`),
		GameData:     json.RawMessage(`"free-text"`),
		Timestamp:    time.Now(),
	}
	suite.mall.AppendScore(submission)
	competitions := suite.mall.Competitions()
	suite.Require().Len(competitions[0].Scores, 1, "submission should be stored")
	suite.Assert().Equal(submission, competitions[0].Scores[0], "submission should be stored unchanged")
}

func TestMall_competitions(t *testing.T) {
	suite.Run(t, new(competitionsTestSuite))
}
