package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/kudos/internal/flagx"
	"github.com/dmitrijs2005/kudos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1h"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	StoreURL         string         `json:"store_url"`
	FormEndpoint     string         `json:"form_endpoint"`
	RelayEndpoint    string         `json:"relay_endpoint"`
	DatabasePath     string         `json:"database_path"`
	CacheTTL         timex.Duration `json:"cache_ttl"`
	AutosaveInterval timex.Duration `json:"autosave_interval"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag, when present. Empty fields leave the defaults in place.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreURL != "" {
		cfg.StoreURL = jc.StoreURL
	}
	if jc.FormEndpoint != "" {
		cfg.FormEndpoint = jc.FormEndpoint
	}
	if jc.RelayEndpoint != "" {
		cfg.RelayEndpoint = jc.RelayEndpoint
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = time.Duration(jc.CacheTTL.Duration)
	}
	if jc.AutosaveInterval.Duration != 0 {
		cfg.AutosaveInterval = time.Duration(jc.AutosaveInterval.Duration)
	}
}
