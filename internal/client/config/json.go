package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/byteme/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without such a flag it does nothing. Read or decode errors panic, like the
// flag parser does.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
