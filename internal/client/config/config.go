package config

import "time"

// Config holds runtime settings for the draft client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DatabaseDSN: path of the local SQLite draft store.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RemoteCallTimeout: upper bound on any single remote call.
type Config struct {
	ServerEndpointAddr  string
	DatabaseDSN         string
	OnlineCheckInterval time.Duration
	RemoteCallTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabaseDSN = "drafts.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.RemoteCallTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
