package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/brayenid/espj-sub000/internal/flagx"
	"github.com/brayenid/espj-sub000/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RemoteCallTimeout   timex.Duration `json:"remote_call_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Missing flag means no JSON is loaded.
// Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, later stages overriding earlier ones.
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.RemoteCallTimeout.Duration != 0 {
		cfg.RemoteCallTimeout = time.Duration(jc.RemoteCallTimeout.Duration)
	}
}
