package web_server

import (
	"context"
	"net/http"

	"github.com/GaryWal/gamingplatformfresh/ws"
)

// PopulateRoutes populates the WebServer with the routes.
func (server *WebServer) PopulateRoutes(hub *ws.Hub, wsCtx context.Context) {
	// Websocket stuff.
	server.router.HandleFunc("/ws", ws.HandleWS(hub, wsCtx))
	// General stuff.
	server.router.HandleFunc("/", server.handleRoot).Methods(http.MethodGet)
	server.router.HandleFunc("/health", server.handleHealth).Methods(http.MethodGet)
	// API stuff.
	apiRouter := server.router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/games", server.handleGetGames).Methods(http.MethodGet)
	apiRouter.HandleFunc("/games/{gameID}", server.handleGetGame).Methods(http.MethodGet)
	apiRouter.HandleFunc("/venues", server.handleGetVenues).Methods(http.MethodGet)
	apiRouter.HandleFunc("/venues/register", server.handleRegisterVenue).Methods(http.MethodPost)
	apiRouter.HandleFunc("/competitions", server.handleGetCompetitions).Methods(http.MethodGet)
	apiRouter.HandleFunc("/competitions", server.handleCreateCompetition).Methods(http.MethodPost)
	apiRouter.HandleFunc("/competitions/{competitionID}/venues", server.handleEnrollVenue).Methods(http.MethodPost)
}
