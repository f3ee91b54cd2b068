package config

import (
	"encoding/json"
	"os"

	"github.com/avasiliev/fittrack/internal/flagx"
	"github.com/avasiliev/fittrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	AuthEndpointAddr    string         `json:"auth_endpoint_addr"`
	CatalogEndpointAddr string         `json:"catalog_endpoint_addr"`
	CatalogAPIKey       string         `json:"catalog_api_key"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabasePath        string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file named via the
// -c or -config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; the process has no useful way to continue with a
// half-read config.
//
// Only non-zero JSON fields override the current values, so a partial config
// file keeps defaults for the rest.
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

	if jc.AuthEndpointAddr != "" {
		cfg.AuthEndpointAddr = jc.AuthEndpointAddr
	}
	if jc.CatalogEndpointAddr != "" {
		cfg.CatalogEndpointAddr = jc.CatalogEndpointAddr
	}
	if jc.CatalogAPIKey != "" {
		cfg.CatalogAPIKey = jc.CatalogAPIKey
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
