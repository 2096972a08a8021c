package app

import (
	"encoding/json"
	"os"

	"github.com/GaryWal/gamingplatformfresh/embedded"
	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/messages"
)

// loadCatalog loads the game catalog from the file set in the config or falls
// back to the built-in catalog.
func loadCatalog(config Config) ([]messages.Game, error) {
	raw := embedded.DefaultCatalog
	if config.CatalogFile.Valid {
		fileRaw, err := os.ReadFile(config.CatalogFile.String)
		if err != nil {
			return nil, errors.Error{
				Code:    errors.ErrFatal,
				Err:     err,
				Message: "read catalog file",
				Details: errors.Details{"path": config.CatalogFile.String},
			}
		}
		raw = fileRaw
	}
	var catalog []messages.Game
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.Error{
			Code:    errors.ErrFatal,
			Kind:    errors.KindDecodeJSON,
			Err:     err,
			Message: "parse catalog",
		}
	}
	return catalog, nil
}
