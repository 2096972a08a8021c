// Package coordinator owns the lifecycle of venue connections. It binds
// connections to venue identities, distributes the game catalog and routes
// score submissions into the competition store.
package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/GaryWal/gamingplatformfresh/client"
	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/messages"
	"go.uber.org/zap"
)

// Store provides the store operations the Coordinator needs.
type Store interface {
	// Games returns the full game catalog in insertion order.
	Games() []messages.Game
	// GameByID retrieves a single game from the catalog.
	GameByID(gameID messages.GameID) (messages.Game, error)
	// ActiveCompetitions returns all currently active competitions.
	ActiveCompetitions() []messages.Competition
	// RefreshLastSeenForVenue marks the venue as seen. Unknown ids are ignored.
	RefreshLastSeenForVenue(venueID messages.VenueID)
}

// Submitter accepts score submissions. Usually a scoring.Aggregator.
type Submitter interface {
	// Submit processes a score submission from a venue.
	Submit(venueID messages.VenueID, gameID messages.GameID, playerScores json.RawMessage, gameData json.RawMessage)
}

// session is the live state bound to one open connection. It only exists
// while the connection is open and is distinct from the longer-lived venue it
// may represent.
type session struct {
	// client is the connection handle.
	client *client.Client
	// venueID is the bound venue id. Empty while the session is unbound.
	venueID messages.VenueID
	// groups are the broadcast groups the session is a member of.
	groups map[string]struct{}
	// done receives when the session is discarded and the message loop needs to
	// terminate.
	done chan struct{}
}

// Coordinator manages venue sessions. It implements client.Listener and is
// driven by a ws.Hub. Handlers for different connections run in parallel
// goroutines while events on the same connection are handled in arrival
// order.
type Coordinator struct {
	// store provides catalog and competition lookups.
	store Store
	// aggregator processes score submissions.
	aggregator Submitter
	// sessions holds all live sessions.
	sessions map[*client.Client]*session
	// groups holds all broadcast groups with their member sessions.
	groups map[string]map[*session]struct{}
	// m locks sessions and groups.
	m sync.RWMutex
}

// NewCoordinator creates a new Coordinator using the given store and
// aggregator.
func NewCoordinator(store Store, aggregator Submitter) *Coordinator {
	return &Coordinator{
		store:      store,
		aggregator: aggregator,
		sessions:   make(map[*client.Client]*session),
		groups:     make(map[string]map[*session]struct{}),
	}
}

// venueGroup is the name of the broadcast group for the venue with the given
// id.
func venueGroup(venueID messages.VenueID) string {
	return fmt.Sprintf("venue:%s", venueID)
}

// AcceptClient creates an unbound session for the new client and handles its
// messages until the connection closes. Called by the hub in a dedicated
// goroutine per connection.
func (c *Coordinator) AcceptClient(ctx context.Context, newClient *client.Client) {
	newSession := &session{
		client: newClient,
		groups: make(map[string]struct{}),
		done:   make(chan struct{}),
	}
	c.m.Lock()
	c.sessions[newClient] = newSession
	c.m.Unlock()
	logging.CoordinatorLogger.Debug("session opened", zap.String("client_id", newClient.ID))
	for {
		select {
		case <-ctx.Done():
			return
		case <-newSession.done:
			return
		case raw, ok := <-newClient.Receive:
			if !ok {
				return
			}
			c.handleRawMessage(newSession, raw)
		}
	}
}

// SayGoodbyeToClient discards the session of the given client and releases all
// group memberships. No store is touched, the venue identity outlives its
// sessions.
func (c *Coordinator) SayGoodbyeToClient(_ context.Context, goneClient *client.Client) {
	c.m.Lock()
	defer c.m.Unlock()
	goneSession, ok := c.sessions[goneClient]
	if !ok {
		return
	}
	for group := range goneSession.groups {
		c.leaveGroup(goneSession, group)
	}
	delete(c.sessions, goneClient)
	close(goneSession.done)
	logging.CoordinatorLogger.Debug("session closed",
		zap.String("client_id", goneClient.ID),
		zap.String("venue_id", string(goneSession.venueID)))
}

// SessionCount returns the number of live sessions.
func (c *Coordinator) SessionCount() int {
	c.m.RLock()
	defer c.m.RUnlock()
	return len(c.sessions)
}

// handleRawMessage parses and dispatches a single inbound message. Any error
// is reported to the originating connection only and never terminates the
// session.
func (c *Coordinator) handleRawMessage(s *session, raw []byte) {
	container, err := messages.ParseMessageContainer(raw)
	if err != nil {
		c.logAndSendError(s, errors.Wrap(err, "parse message container", nil))
		return
	}
	logging.MessageLogger.Debug(string(container.Content),
		zap.String("client_id", s.client.ID),
		zap.String("dir", "incoming"),
		zap.String("venue_id", string(container.VenueID)),
		zap.String("message_type", string(container.MessageType)))
	content, err := messages.ParseInboundContent(container)
	if err != nil {
		c.logAndSendError(s, errors.Wrap(err, "parse inbound content", nil))
		return
	}
	switch message := content.(type) {
	case messages.MessageVenueConnect:
		c.handleVenueConnect(s, message)
	case messages.MessageGameRequest:
		c.handleGameRequest(s, message)
	case messages.MessageScoreSubmit:
		c.handleScoreSubmit(s, message)
	default:
		c.logAndSendError(s, errors.NewInternalError("no handler for parsed message",
			errors.Details{"message_type": container.MessageType}))
	}
}

// handleVenueConnect binds the session to the venue with the given id and
// joins it to the venue broadcast group. The session then receives the full
// game catalog and all active competitions. Rebinding an already bound
// session is allowed and releases the previous group membership.
func (c *Coordinator) handleVenueConnect(s *session, message messages.MessageVenueConnect) {
	c.m.Lock()
	if c.sessions[s.client] != s {
		// The session was discarded while the message was still queued. It must
		// not rejoin any group as nothing would ever remove it again.
		c.m.Unlock()
		logging.CoordinatorLogger.Debug("discarding venue connect for closed session",
			zap.String("client_id", s.client.ID),
			zap.String("venue_id", string(message.VenueID)))
		return
	}
	if s.venueID != "" {
		c.leaveGroup(s, venueGroup(s.venueID))
	}
	s.venueID = message.VenueID
	c.joinGroup(s, venueGroup(message.VenueID))
	c.m.Unlock()
	c.store.RefreshLastSeenForVenue(message.VenueID)
	logging.CoordinatorLogger.Info("venue connected",
		zap.String("venue_id", string(message.VenueID)),
		zap.String("venue_name", message.VenueInfo.Name),
		zap.String("client_id", s.client.ID))
	// Push catalog and active competitions to this connection only.
	c.sendToSession(s, messages.MessageTypeGamesAvailable, message.VenueID,
		messages.MessageGamesAvailable(c.store.Games()))
	c.sendToSession(s, messages.MessageTypeCompetitionsActive, message.VenueID,
		messages.MessageCompetitionsActive(c.store.ActiveCompetitions()))
}

// handleGameRequest replies with the download descriptor for the requested
// game or with an error event if the game is unknown. No state is mutated
// either way.
func (c *Coordinator) handleGameRequest(s *session, message messages.MessageGameRequest) {
	logging.CoordinatorLogger.Info("game requested",
		zap.String("game_id", string(message.GameID)),
		zap.String("venue_id", string(message.VenueID)))
	game, err := c.store.GameByID(message.GameID)
	if err != nil {
		c.logAndSendError(s, errors.Error{
			Code:    errors.ErrNotFound,
			Kind:    errors.KindGameNotFound,
			Message: "Game not found",
			Details: errors.Details{"game_id": message.GameID},
		})
		return
	}
	c.sendToSession(s, messages.MessageTypeGameDownload, message.VenueID, messages.MessageGameDownload{
		ID:          game.ID,
		Name:        game.Name,
		DownloadURL: fmt.Sprintf("/api/games/%s/download", game.ID),
		Size:        game.Size,
		Version:     game.Version,
	})
}

// handleScoreSubmit processes a score submission and notifies all connected
// sessions. The venue id is taken from the payload, so even unbound sessions
// may submit scores. Scores affect the shared global leaderboard view, hence
// the broadcast goes to everyone instead of the venue group.
func (c *Coordinator) handleScoreSubmit(s *session, message messages.MessageScoreSubmit) {
	logging.CoordinatorLogger.Info("scores submitted",
		zap.String("game_id", string(message.GameID)),
		zap.String("venue_id", string(message.VenueID)))
	c.aggregator.Submit(message.VenueID, message.GameID, message.PlayerScores, message.GameData)
	c.BroadcastToAll(messages.MessageTypeLeaderboardsUpdated, messages.MessageLeaderboardsUpdated{
		GameID:  message.GameID,
		Message: "Scores updated successfully",
	})
}

// joinGroup adds the session to the group with the given name. Callers must
// hold the lock.
func (c *Coordinator) joinGroup(s *session, group string) {
	members, ok := c.groups[group]
	if !ok {
		members = make(map[*session]struct{})
		c.groups[group] = members
	}
	members[s] = struct{}{}
	s.groups[group] = struct{}{}
}

// leaveGroup removes the session from the group with the given name and drops
// empty groups. Callers must hold the lock.
func (c *Coordinator) leaveGroup(s *session, group string) {
	if members, ok := c.groups[group]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(c.groups, group)
		}
	}
	delete(s.groups, group)
}

// BroadcastToAll sends the given message to every live session, bound or not.
func (c *Coordinator) BroadcastToAll(messageType messages.MessageType, content interface{}) {
	c.m.RLock()
	defer c.m.RUnlock()
	for _, s := range c.sessions {
		c.send(s, messages.MessageContainer{
			MessageType: messageType,
			VenueID:     s.venueID,
			Content:     messages.MustMarshalContent(content),
		})
	}
}

// BroadcastToVenue sends the given message to every session bound to the
// venue with the given id. This allows O(1) targeted pushes like competition
// invites without iterating all connections.
func (c *Coordinator) BroadcastToVenue(venueID messages.VenueID, messageType messages.MessageType, content interface{}) {
	c.m.RLock()
	defer c.m.RUnlock()
	for s := range c.groups[venueGroup(venueID)] {
		c.send(s, messages.MessageContainer{
			MessageType: messageType,
			VenueID:     venueID,
			Content:     messages.MustMarshalContent(content),
		})
	}
}

// sendToSession sends a message with the given type and content to a single
// session. Messages for sessions that already said goodbye are dropped as
// their send channel may be closed by the hub.
func (c *Coordinator) sendToSession(s *session, messageType messages.MessageType,
	venueID messages.VenueID, content interface{}) {
	marshalledContent, err := json.Marshal(content)
	if err != nil {
		errors.Log(logging.CoordinatorLogger, errors.NewJSONError(err, "marshal outgoing content", false))
		return
	}
	c.m.RLock()
	defer c.m.RUnlock()
	if c.sessions[s.client] != s {
		logging.CoordinatorLogger.Debug("discarding message for closed session",
			zap.String("client_id", s.client.ID),
			zap.String("message_type", string(messageType)))
		return
	}
	c.send(s, messages.MessageContainer{
		MessageType: messageType,
		VenueID:     venueID,
		Content:     marshalledContent,
	})
}

// send marshals the container and passes it to the client without blocking.
// If the client's send buffer is full, the message is dropped so that a slow
// consumer can never stall the hub. Callers must hold the lock and only pass
// sessions that are still registered: the hub discards the session before it
// closes the send channel, so a registered session's channel is open.
func (c *Coordinator) send(s *session, container messages.MessageContainer) {
	raw, err := json.Marshal(container)
	if err != nil {
		errors.Log(logging.CoordinatorLogger, errors.NewJSONError(err, "marshal outgoing message", false))
		return
	}
	logging.MessageLogger.Debug(string(container.Content),
		zap.String("client_id", s.client.ID),
		zap.String("dir", "outgoing"),
		zap.String("venue_id", string(container.VenueID)),
		zap.String("message_type", string(container.MessageType)))
	select {
	case s.client.Send <- raw:
	default:
		logging.CoordinatorLogger.Warn("dropping message for slow consumer",
			zap.String("client_id", s.client.ID),
			zap.String("message_type", string(container.MessageType)))
	}
}

// logAndSendError logs the given error and reports it to the originating
// session only. Internal error details are never leaked to venues.
func (c *Coordinator) logAndSendError(s *session, err error) {
	errors.Log(logging.CoordinatorLogger, err)
	c.sendToSession(s, messages.MessageTypeError, s.venueID, messages.MessageErrorFromError(err))
}
