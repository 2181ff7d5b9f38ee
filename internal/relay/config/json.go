package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/kudos/internal/flagx"
	"github.com/dmitrijs2005/kudos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DispatchToken   string         `json:"dispatch_token"`
	DispatchRepo    string         `json:"dispatch_repo"`
	DispatchBaseURL string         `json:"dispatch_base_url"`
	DispatchTimeout timex.Duration `json:"dispatch_timeout"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Empty JSON fields leave the current value in place, so
// env-provided credentials survive a partial config file. Panics on read
// or unmarshal errors; a broken config file should stop the process.
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

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DispatchToken != "" {
		cfg.DispatchToken = jc.DispatchToken
	}
	if jc.DispatchRepo != "" {
		cfg.DispatchRepo = jc.DispatchRepo
	}
	if jc.DispatchBaseURL != "" {
		cfg.DispatchBaseURL = jc.DispatchBaseURL
	}
	if jc.DispatchTimeout.Duration != 0 {
		cfg.DispatchTimeout = time.Duration(jc.DispatchTimeout.Duration)
	}
}
