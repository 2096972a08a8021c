package app

import (
	"encoding/json"
	"os"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/gobuffalo/nulls"
	"go.uber.org/zap/zapcore"
)

// Config is the configuration needed in order to boot an App.
type Config struct {
	// ServeAddr is the address the app will listen for HTTP and websocket
	// connections on.
	ServeAddr string `json:"serve_addr"`
	// CatalogFile is an optional path to a JSON file with the game catalog. If
	// not set, the built-in catalog is used.
	CatalogFile nulls.String `json:"catalog_file"`
	// Log is the logging configuration.
	Log LogConfig `json:"log"`
}

// LogConfig is the configuration for logging in App.
type LogConfig struct {
	// StdoutLogLevel is the minimum level for log output to stdout.
	StdoutLogLevel zapcore.Level `json:"stdout_log_level"`
	// HighPriorityOutput is an optional file path warnings and errors are
	// written to with rotation.
	HighPriorityOutput nulls.String `json:"high_priority_output"`
	// DebugOutput is an optional file path all log entries are written to with
	// rotation.
	DebugOutput nulls.String `json:"debug_output"`
	// MaxSize is the maximum size in megabytes of a log file before it gets
	// rotated.
	MaxSize int `json:"max_size"`
	// KeepDays is the maximum number of days to retain old log files.
	KeepDays int `json:"keep_days"`
}

// LoadConfigFromFile reads and parses the Config from the file at the given
// path.
func LoadConfigFromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Error{
			Code:    errors.ErrFatal,
			Err:     err,
			Message: "read config file",
			Details: errors.Details{"path": path},
		}
	}
	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Error{
			Code:    errors.ErrFatal,
			Kind:    errors.KindDecodeJSON,
			Err:     err,
			Message: "parse config file",
			Details: errors.Details{"path": path},
		}
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults for local operation.
func DefaultConfig() Config {
	return Config{
		ServeAddr: ":10000",
		Log: LogConfig{
			StdoutLogLevel: zapcore.InfoLevel,
			MaxSize:        64,
			KeepDays:       28,
		},
	}
}

// ValidateConfig assures that the given Config is valid for booting an App.
func ValidateConfig(config Config) error {
	if config.ServeAddr == "" {
		return errors.Error{
			Code:    errors.ErrFatal,
			Message: "no serve address provided in config",
		}
	}
	return nil
}
