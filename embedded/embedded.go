package embedded

import _ "embed"

// DefaultCatalog is the built-in game catalog that is used when no catalog
// file is configured.
//
//go:embed catalog.json
var DefaultCatalog []byte
