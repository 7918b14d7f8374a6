package config

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// SetupLogger configures the process-wide apex/log handler and level.
// debug forces the debug level regardless of LOG_LEVEL.
func SetupLogger(cfg *Config, debug bool) {
	switch cfg.LogFormat {
	case "text":
		log.SetHandler(text.New(os.Stderr))
	default:
		log.SetHandler(json.New(os.Stdout))
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
