package stores

import (
	"fmt"
	"time"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/messages"
	"github.com/gobuffalo/nulls"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCompetition creates a new competition with a fresh unique id and
// stores it. The competition starts as messages.CompetitionStatusActive with
// no enrolled venues and no scores. If no type is given,
// messages.CompetitionTypeTournament is used. The referenced game must exist
// in the catalog.
func (m *Mall) CreateCompetition(name string, gameID messages.GameID, competitionType messages.CompetitionType,
	startDate time.Time, endDate nulls.Time) (messages.Competition, error) {
	if name == "" {
		return messages.Competition{}, errors.NewMissingFieldError("name")
	}
	if gameID == "" {
		return messages.Competition{}, errors.NewMissingFieldError("game_id")
	}
	if _, err := m.GameByID(gameID); err != nil {
		return messages.Competition{}, errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindGameNotFound,
			Message: fmt.Sprintf("unknown game for competition: %s", gameID),
			Details: errors.Details{"game_id": gameID},
		}
	}
	if competitionType == "" {
		competitionType = messages.CompetitionTypeTournament
	}
	competition := messages.Competition{
		ID:        messages.CompetitionID(fmt.Sprintf("comp-%s", uuid.New().String())),
		Name:      name,
		GameID:    gameID,
		Type:      competitionType,
		Status:    messages.CompetitionStatusActive,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now(),
		Venues:    make([]messages.VenueID, 0),
		Scores:    make([]messages.ScoreSubmission, 0),
	}
	m.competitionsMutex.Lock()
	defer m.competitionsMutex.Unlock()
	stored := competition
	m.competitions[competition.ID] = &stored
	m.competitionOrder = append(m.competitionOrder, competition.ID)
	logging.CompetitionLogger.Info("competition created",
		zap.String("competition_id", string(competition.ID)),
		zap.String("competition_name", competition.Name),
		zap.String("game_id", string(competition.GameID)))
	return competition, nil
}

// Competitions returns all competitions in creation order.
func (m *Mall) Competitions() []messages.Competition {
	m.competitionsMutex.RLock()
	defer m.competitionsMutex.RUnlock()
	competitions := make([]messages.Competition, 0, len(m.competitionOrder))
	for _, competitionID := range m.competitionOrder {
		competitions = append(competitions, copyCompetition(m.competitions[competitionID]))
	}
	return competitions
}

// ActiveCompetitions returns all competitions with
// messages.CompetitionStatusActive in creation order.
func (m *Mall) ActiveCompetitions() []messages.Competition {
	m.competitionsMutex.RLock()
	defer m.competitionsMutex.RUnlock()
	competitions := make([]messages.Competition, 0, len(m.competitionOrder))
	for _, competitionID := range m.competitionOrder {
		competition := m.competitions[competitionID]
		if competition.Status != messages.CompetitionStatusActive {
			continue
		}
		competitions = append(competitions, copyCompetition(competition))
	}
	return competitions
}

// CompetitionCount returns the number of competitions.
func (m *Mall) CompetitionCount() int {
	m.competitionsMutex.RLock()
	defer m.competitionsMutex.RUnlock()
	return len(m.competitions)
}

// EnrollVenue adds the venue with the given id to the enrolled venues of the
// competition with the given id. Enrolling an already enrolled venue is a
// no-op. Unknown competition or venue ids result in an errors.ErrNotFound
// error.
func (m *Mall) EnrollVenue(competitionID messages.CompetitionID, venueID messages.VenueID) error {
	m.venuesMutex.RLock()
	_, venueKnown := m.venues[venueID]
	m.venuesMutex.RUnlock()
	if !venueKnown {
		return errors.NewResourceNotFoundError(fmt.Sprintf("venue %s not found", venueID),
			errors.Details{"venue_id": venueID})
	}
	m.competitionsMutex.Lock()
	defer m.competitionsMutex.Unlock()
	competition, ok := m.competitions[competitionID]
	if !ok {
		return errors.Error{
			Code:    errors.ErrNotFound,
			Kind:    errors.KindCompetitionNotFound,
			Message: fmt.Sprintf("competition %s not found", competitionID),
			Details: errors.Details{"competition_id": competitionID},
		}
	}
	for _, enrolled := range competition.Venues {
		if enrolled == venueID {
			return nil
		}
	}
	competition.Venues = append(competition.Venues, venueID)
	logging.CompetitionLogger.Info("venue enrolled in competition",
		zap.String("competition_id", string(competitionID)),
		zap.String("venue_id", string(venueID)))
	return nil
}

// AppendScore appends the given submission to every competition whose game
// matches the submission and whose enrolled venues contain the submitting
// venue. A submission may land in zero, one or many competitions. No match is
// not an error.
func (m *Mall) AppendScore(submission messages.ScoreSubmission) {
	m.competitionsMutex.Lock()
	defer m.competitionsMutex.Unlock()
	for _, competitionID := range m.competitionOrder {
		competition := m.competitions[competitionID]
		if competition.GameID != submission.GameID {
			continue
		}
		if !containsVenue(competition.Venues, submission.VenueID) {
			continue
		}
		competition.Scores = append(competition.Scores, submission)
		logging.CompetitionLogger.Debug("score appended to competition",
			zap.String("competition_id", string(competitionID)),
			zap.String("venue_id", string(submission.VenueID)),
			zap.String("game_id", string(submission.GameID)))
	}
}

func containsVenue(venues []messages.VenueID, venueID messages.VenueID) bool {
	for _, v := range venues {
		if v == venueID {
			return true
		}
	}
	return false
}

// copyCompetition creates a copy of the given competition with its own venue
// and score slices so that callers never share memory with the store.
func copyCompetition(competition *messages.Competition) messages.Competition {
	copied := *competition
	copied.Venues = make([]messages.VenueID, len(competition.Venues))
	copy(copied.Venues, competition.Venues)
	copied.Scores = make([]messages.ScoreSubmission, len(competition.Scores))
	copy(copied.Scores, competition.Scores)
	return copied
}
