package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "nodeA", cfg.NodeID)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Controller)
	assert.Equal(t, "/tmp/plum-agent", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.TickInterval)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("AGENT_NODE_ID", "node42")
	t.Setenv("CONTROLLER_BASE", "http://controller:9999")
	t.Setenv("AGENT_DATA_DIR", "/var/lib/plum")
	t.Setenv("AGENT_TICK_INTERVAL", "2s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "node42", cfg.NodeID)
	assert.Equal(t, "http://controller:9999", cfg.Controller)
	assert.Equal(t, "/var/lib/plum", cfg.DataDir)
	assert.Equal(t, 2*time.Second, cfg.TickInterval)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodeId: fromFile\nip: 10.0.0.7\n"), 0644))

	t.Setenv("AGENT_NODE_ID", "fromEnv")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fromEnv", cfg.NodeID)
	assert.Equal(t, "10.0.0.7", cfg.IP)
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodeId: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNodeDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	cfg.NodeID = "nodeB"

	assert.Equal(t, filepath.Join("/data", "nodeB"), cfg.NodeDir())
}

func TestDeriveGRPCAddr(t *testing.T) {
	tests := []struct {
		controller string
		want       string
	}{
		{"http://127.0.0.1:8080", "127.0.0.1:9090"},
		{"http://controller.example:8080", "controller.example:9090"},
		{"https://10.1.2.3", "10.1.2.3:9090"},
		{"not a url", "127.0.0.1:9090"},
		{"", "127.0.0.1:9090"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveGRPCAddr(tt.controller), "controller=%q", tt.controller)
	}
}
