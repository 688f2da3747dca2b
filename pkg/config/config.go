package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Config holds the agent configuration. Precedence, lowest to highest:
// defaults, YAML config file, .env file, process environment.
type Config struct {
	// NodeID is the identity reported to the controller.
	NodeID string `yaml:"nodeId"`

	// Controller is the base URL of the controller HTTP API.
	Controller string `yaml:"controller"`

	// ControllerGRPC is the controller task-stream address advertised to
	// spawned instances via CONTROLLER_GRPC_ADDR. Empty means derive it
	// from the controller base URL host on port 9090.
	ControllerGRPC string `yaml:"controllerGrpc"`

	// IP is the node address reported in heartbeats and service records.
	IP string `yaml:"ip"`

	// DataDir is the root of on-disk instance state. Per-node storage
	// lives under DataDir/NodeID.
	DataDir string `yaml:"dataDir"`

	// TickInterval is the reconcile period.
	TickInterval time.Duration `yaml:"tickInterval"`

	// DrainTimeout bounds the shutdown drain.
	DrainTimeout time.Duration `yaml:"drainTimeout"`

	// MetricsAddr enables the Prometheus listener when non-empty.
	MetricsAddr string `yaml:"metricsAddr"`

	LogLevel string `yaml:"logLevel"`
	LogJSON  bool   `yaml:"logJson"`
}

// Default returns a Config populated with the stock defaults.
func Default() *Config {
	return &Config{
		NodeID:       "nodeA",
		Controller:   "http://127.0.0.1:8080",
		IP:           "127.0.0.1",
		DataDir:      "/tmp/plum-agent",
		TickInterval: 5 * time.Second,
		DrainTimeout: 7 * time.Second,
		LogLevel:     "info",
	}
}

// Load builds the effective configuration. path names an optional YAML file;
// an empty path skips that layer. A .env file found next to the executable,
// in its parent directory, or in the working directory is applied before the
// process environment is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	loadDotEnv()
	cfg.applyEnv()

	if cfg.ControllerGRPC == "" {
		cfg.ControllerGRPC = deriveGRPCAddr(cfg.Controller)
	}
	return cfg, nil
}

// loadDotEnv loads the first .env file found. Existing environment variables
// always win over .env entries.
func loadDotEnv() {
	for _, path := range []string{
		filepath.Join(exeDir(), ".env"),
		filepath.Join(exeDir(), "..", ".env"),
		".env",
	} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AGENT_NODE_ID"); v != "" {
		c.NodeID = v
	}
	if v := os.Getenv("CONTROLLER_BASE"); v != "" {
		c.Controller = v
	}
	if v := os.Getenv("CONTROLLER_GRPC_ADDR"); v != "" {
		c.ControllerGRPC = v
	}
	if v := os.Getenv("AGENT_IP"); v != "" {
		c.IP = v
	}
	if v := os.Getenv("AGENT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("AGENT_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv("AGENT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("AGENT_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.TickInterval = d
		}
	}
	if v := os.Getenv("AGENT_DRAIN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.DrainTimeout = d
		}
	}
}

// NodeDir returns the per-node storage root.
func (c *Config) NodeDir() string {
	return filepath.Join(c.DataDir, c.NodeID)
}

// deriveGRPCAddr maps a controller HTTP base URL to the conventional
// task-stream address on the same host, port 9090.
func deriveGRPCAddr(controller string) string {
	u, err := url.Parse(controller)
	if err != nil || u.Hostname() == "" {
		return "127.0.0.1:9090"
	}
	return u.Hostname() + ":9090"
}
