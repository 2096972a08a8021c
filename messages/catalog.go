package messages

// GameStatus is the availability state of a Game.
type GameStatus string

const (
	// GameStatusActive is used for games that venues may request.
	GameStatusActive GameStatus = "active"
	// GameStatusInactive is used for games that are still known but no longer
	// offered.
	GameStatusInactive GameStatus = "inactive"
)

// GameType is the category of a game like racing or quiz.
type GameType string

// Game holds all catalog information for a game as handed out to venues.
type Game struct {
	// ID identifies the game.
	ID GameID `json:"id"`
	// Name is the human-readable name.
	Name string `json:"name"`
	// Type is the category of the game.
	Type GameType `json:"type"`
	// Description describes the game.
	Description string `json:"description"`
	// Version is the semver version string of the game package.
	Version string `json:"version"`
	// Size is the package size in bytes.
	Size int64 `json:"size"`
	// Thumbnail is a reference to the thumbnail asset.
	Thumbnail string `json:"thumbnail"`
	// Status is the availability state.
	Status GameStatus `json:"status"`
}

// MessageGamesAvailable is used with MessageTypeGamesAvailable and carries the
// full game catalog.
type MessageGamesAvailable []Game

// MessageGameRequest is used with MessageTypeGameRequest when a venue requests
// a game download descriptor.
type MessageGameRequest struct {
	// GameID is the id of the requested game.
	GameID GameID `json:"game_id"`
	// VenueID is the id of the requesting venue.
	VenueID VenueID `json:"venue_id"`
}

// MessageGameDownload is used with MessageTypeGameDownload as the download
// descriptor for a requested game.
type MessageGameDownload struct {
	// ID identifies the game.
	ID GameID `json:"id"`
	// Name is the human-readable name.
	Name string `json:"name"`
	// DownloadURL is the URL the venue retrieves the game package from.
	DownloadURL string `json:"download_url"`
	// Size is the package size in bytes.
	Size int64 `json:"size"`
	// Version is the semver version string of the game package.
	Version string `json:"version"`
}
