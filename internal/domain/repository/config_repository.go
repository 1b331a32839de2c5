package repository

import (
	"github.com/diillson/evcc-charging-report/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	// Load builds the configuration from the environment, then overlays
	// the given TOML, YAML or JSON file when filePath is non-empty.
	Load(filePath string) (*types.Config, error)
}
