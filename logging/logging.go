package logging

import "go.uber.org/zap"

// Loggers.
var (
	// AppLogger is the main app.App logger.
	AppLogger *zap.Logger
	// CatalogLogger is used for the game catalog.
	CatalogLogger *zap.Logger
	// VenueLogger is used for the venue registry.
	VenueLogger *zap.Logger
	// CompetitionLogger is used for the competition store.
	CompetitionLogger *zap.Logger
	// ScoringLogger is the logger for score aggregation.
	ScoringLogger *zap.Logger
	// CoordinatorLogger is the logger for venue session coordination.
	CoordinatorLogger *zap.Logger
	// MessageLogger is used for all incoming and outgoing messages.
	MessageLogger *zap.Logger
	// WSLogger is used for all stuff regarding websocket connections.
	WSLogger *zap.Logger
	// WebServerLogger is used for all stuff regarding web servers.
	WebServerLogger *zap.Logger
)

func init() {
	// Assure usable loggers even if ApplyToGlobalLoggers was never called, for
	// example in tests.
	ApplyToGlobalLoggers(zap.NewNop())
}

// ApplyToGlobalLoggers sets all global loggers based on the given parent
// logger.
func ApplyToGlobalLoggers(logger *zap.Logger) {
	AppLogger = logger.Named("app")
	CatalogLogger = logger.Named("catalog")
	VenueLogger = logger.Named("venue")
	CompetitionLogger = logger.Named("competition")
	ScoringLogger = logger.Named("scoring")
	CoordinatorLogger = logger.Named("coordinator")
	MessageLogger = logger.Named("message")
	WSLogger = logger.Named("ws")
	WebServerLogger = logger.Named("web-server")
}
