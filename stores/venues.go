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

// RegisterVenue creates a new venue with a fresh unique id and stores it. The
// venue starts as messages.VenueStatusActive with created-at and last-seen set
// to the current time.
func (m *Mall) RegisterVenue(name string, venueType string, contactInfo nulls.String) (messages.Venue, error) {
	if name == "" {
		return messages.Venue{}, errors.NewMissingFieldError("venue_name")
	}
	now := time.Now()
	venue := messages.Venue{
		ID:          messages.VenueID(fmt.Sprintf("venue-%s", uuid.New().String())),
		Name:        name,
		Type:        venueType,
		ContactInfo: contactInfo,
		Status:      messages.VenueStatusActive,
		CreatedAt:   now,
		LastSeen:    now,
	}
	m.venuesMutex.Lock()
	defer m.venuesMutex.Unlock()
	m.venues[venue.ID] = venue
	m.venueOrder = append(m.venueOrder, venue.ID)
	logging.VenueLogger.Info("venue registered",
		zap.String("venue_id", string(venue.ID)),
		zap.String("venue_name", venue.Name))
	return venue, nil
}

// Venues returns all registered venues in registration order.
func (m *Mall) Venues() []messages.Venue {
	m.venuesMutex.RLock()
	defer m.venuesMutex.RUnlock()
	venues := make([]messages.Venue, 0, len(m.venueOrder))
	for _, venueID := range m.venueOrder {
		venues = append(venues, m.venues[venueID])
	}
	return venues
}

// VenueCount returns the number of registered venues.
func (m *Mall) VenueCount() int {
	m.venuesMutex.RLock()
	defer m.venuesMutex.RUnlock()
	return len(m.venues)
}

// RefreshLastSeenForVenue sets the last-seen field for the venue with the
// given id to the current time. Venue ids on connections are supplied by the
// peer, so an unknown id is not an error and simply ignored.
func (m *Mall) RefreshLastSeenForVenue(venueID messages.VenueID) {
	m.venuesMutex.Lock()
	defer m.venuesMutex.Unlock()
	venue, ok := m.venues[venueID]
	if !ok {
		logging.VenueLogger.Debug("last-seen refresh for unknown venue",
			zap.String("venue_id", string(venueID)))
		return
	}
	venue.LastSeen = time.Now()
	m.venues[venueID] = venue
}
