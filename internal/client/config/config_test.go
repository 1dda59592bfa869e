package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, "drafts.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, cfg.RemoteCallTimeout)
}
