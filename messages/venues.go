package messages

import (
	"time"

	"github.com/gobuffalo/nulls"
)

// VenueStatus is the state of a venue.
type VenueStatus string

const (
	// VenueStatusActive is used for venues that take part in game distribution.
	VenueStatusActive VenueStatus = "active"
	// VenueStatusInactive is used for venues that are no longer served.
	VenueStatusInactive VenueStatus = "inactive"
)

// Venue holds all information regarding a registered venue.
type Venue struct {
	// ID is the assigned venue id.
	ID VenueID `json:"id"`
	// Name is the human-readable name of the venue.
	Name string `json:"name"`
	// Type describes the kind of venue like arcade hall or bar.
	Type string `json:"type"`
	// ContactInfo is optional contact information.
	ContactInfo nulls.String `json:"contact_info"`
	// Status is the state of the venue.
	Status VenueStatus `json:"status"`
	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"created_at"`
	// LastSeen is the last time the venue connected.
	LastSeen time.Time `json:"last_seen"`
}

// VenueInfo is the self-description a venue supplies when identifying on a
// connection. It is currently only logged.
type VenueInfo struct {
	// Name is the venue name.
	Name string `json:"name,omitempty"`
	// Type describes the kind of venue.
	Type string `json:"type,omitempty"`
}

// MessageVenueConnect is used with MessageTypeVenueConnect when a venue
// identifies itself on an open connection.
type MessageVenueConnect struct {
	// VenueID is the id of the venue the connection belongs to.
	VenueID VenueID `json:"venue_id"`
	// VenueInfo is the self-description of the venue.
	VenueInfo VenueInfo `json:"venue_info"`
}
