package web_server

import (
	"io"
	"net/http"
	"time"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/messages"
	"github.com/GaryWal/gamingplatformfresh/util"
	"github.com/gobuffalo/nulls"
	"github.com/gorilla/mux"
)

// handleRoot serves a small self-description of the hub.
func (server *WebServer) handleRoot(w http.ResponseWriter, _ *http.Request) {
	server.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Central Gaming Hub - Game Distribution Platform",
		"version": Version,
		"endpoints": map[string]string{
			"health":       "/health",
			"games":        "/api/games",
			"venues":       "/api/venues",
			"competitions": "/api/competitions",
		},
	})
}

// handleHealth serves the health check with store counters.
func (server *WebServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	server.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":              "healthy",
		"timestamp":           time.Now().Format(time.RFC3339),
		"version":             Version,
		"active_venues":       server.mall.VenueCount(),
		"active_competitions": server.mall.CompetitionCount(),
		"games_available":     len(server.mall.Games()),
	})
}

// handleGetGames serves the full game catalog.
func (server *WebServer) handleGetGames(w http.ResponseWriter, _ *http.Request) {
	server.respondJSON(w, http.StatusOK, server.mall.Games())
}

// handleGetGame serves a single game from the catalog.
func (server *WebServer) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID := messages.GameID(mux.Vars(r)["gameID"])
	game, err := server.mall.GameByID(gameID)
	if err != nil {
		server.respondError(w, errors.Error{
			Code:    errors.ErrNotFound,
			Kind:    errors.KindGameNotFound,
			Message: "Game not found",
			Details: errors.Details{"game_id": gameID},
		})
		return
	}
	server.respondJSON(w, http.StatusOK, game)
}

// handleGetVenues serves all registered venues.
func (server *WebServer) handleGetVenues(w http.ResponseWriter, _ *http.Request) {
	server.respondJSON(w, http.StatusOK, server.mall.Venues())
}

// registerVenueRequest is the request body for venue registration.
type registerVenueRequest struct {
	VenueName   string       `json:"venue_name"`
	VenueType   string       `json:"venue_type"`
	ContactInfo nulls.String `json:"contact_info"`
}

// handleRegisterVenue registers a new venue.
func (server *WebServer) handleRegisterVenue(w http.ResponseWriter, r *http.Request) {
	var request registerVenueRequest
	if err := server.decodeBody(r, &request); err != nil {
		server.respondError(w, err)
		return
	}
	venue, err := server.mall.RegisterVenue(request.VenueName, request.VenueType, request.ContactInfo)
	if err != nil {
		server.respondError(w, errors.Wrap(err, "register venue", nil))
		return
	}
	server.respondJSON(w, http.StatusOK, map[string]interface{}{
		"venue":   venue,
		"message": "Venue registered successfully",
	})
}

// handleGetCompetitions serves all competitions.
func (server *WebServer) handleGetCompetitions(w http.ResponseWriter, _ *http.Request) {
	server.respondJSON(w, http.StatusOK, server.mall.Competitions())
}

// createCompetitionRequest is the request body for competition creation.
type createCompetitionRequest struct {
	Name      string                   `json:"name"`
	GameID    messages.GameID          `json:"game_id"`
	Type      messages.CompetitionType `json:"type"`
	StartDate time.Time                `json:"start_date"`
	EndDate   nulls.Time               `json:"end_date"`
}

// handleCreateCompetition creates a new competition.
func (server *WebServer) handleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	var request createCompetitionRequest
	if err := server.decodeBody(r, &request); err != nil {
		server.respondError(w, err)
		return
	}
	competition, err := server.mall.CreateCompetition(request.Name, request.GameID, request.Type,
		request.StartDate, request.EndDate)
	if err != nil {
		server.respondError(w, errors.Wrap(err, "create competition", nil))
		return
	}
	server.respondJSON(w, http.StatusOK, map[string]interface{}{
		"competition": competition,
		"message":     "Competition created successfully",
	})
}

// enrollVenueRequest is the request body for enrolling a venue in a
// competition.
type enrollVenueRequest struct {
	VenueID messages.VenueID `json:"venue_id"`
}

// handleEnrollVenue enrolls a venue in a competition so that its score
// submissions count for the competition.
func (server *WebServer) handleEnrollVenue(w http.ResponseWriter, r *http.Request) {
	competitionID := messages.CompetitionID(mux.Vars(r)["competitionID"])
	var request enrollVenueRequest
	if err := server.decodeBody(r, &request); err != nil {
		server.respondError(w, err)
		return
	}
	if request.VenueID == "" {
		server.respondError(w, errors.NewMissingFieldError("venue_id"))
		return
	}
	if err := server.mall.EnrollVenue(competitionID, request.VenueID); err != nil {
		server.respondError(w, errors.Wrap(err, "enroll venue", nil))
		return
	}
	server.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Venue enrolled successfully",
	})
}

// decodeBody decodes the request body as JSON into the given target.
func (server *WebServer) decodeBody(r *http.Request, target interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Error{
			Code:    errors.ErrBadRequest,
			Kind:    errors.KindMalformedPayload,
			Err:     err,
			Message: "read request body",
		}
	}
	return util.DecodeAsJSON(body, target)
}

// respondJSON writes the given payload as JSON response.
func (server *WebServer) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	content, err := util.EncodeAsJSON(payload)
	if err != nil {
		errors.Log(logging.WebServerLogger, errors.Wrap(err, "encode response", nil))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(content)
}

// respondError logs the given error and writes it as JSON error response.
// Details of internal errors are never exposed to callers.
func (server *WebServer) respondError(w http.ResponseWriter, err error) {
	errors.Log(logging.WebServerLogger, err)
	e, _ := errors.Cast(err)
	status := http.StatusInternalServerError
	switch e.Code {
	case errors.ErrBadRequest, errors.ErrProtocolViolation:
		status = http.StatusBadRequest
	case errors.ErrNotFound:
		status = http.StatusNotFound
	}
	message := e.Message
	if !errors.BlameUser(err) {
		message = "internal server error"
	}
	server.respondJSON(w, status, map[string]string{"error": message})
}
