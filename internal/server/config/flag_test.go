package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{
			"-a", "127.0.0.1:8081", "-g", "127.0.0.1:9090", "-s", "sqlite", "-d", "members.db", "-l", "text", "-t", "3",
		},
			expected: &Config{
				EndpointAddrHTTP: "127.0.0.1:8081",
				EndpointAddrGRPC: "127.0.0.1:9090",
				StorageDriver:    "sqlite",
				DatabaseDSN:      "members.db",
				LogFormat:        "text",
				ShutdownTimeout:  3 * time.Second,
			}},
		{name: "foreign flags are ignored", args: []string{"-c", "cfg.json", "-x", "-s=memory"},
			expected: &Config{StorageDriver: "memory"}},
		{name: "bad int", args: []string{"-t", "x"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_TimeoutUntouchedWithoutFlag(t *testing.T) {
	config := &Config{ShutdownTimeout: 1500 * time.Millisecond}

	require.NoError(t, parseFlags(config, nil))
	assert.Equal(t, 1500*time.Millisecond, config.ShutdownTimeout)
}
