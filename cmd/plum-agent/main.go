package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plumstack/plum/pkg/artifact"
	"github.com/plumstack/plum/pkg/config"
	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
	"github.com/plumstack/plum/pkg/nudge"
	"github.com/plumstack/plum/pkg/reconciler"
	"github.com/plumstack/plum/pkg/report"
	"github.com/plumstack/plum/pkg/state"
	"github.com/plumstack/plum/pkg/transport"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plum-agent",
	Short: "Plum node agent - reconciles local instances against the controller",
	Long: `plum-agent is the per-host supervisor of the Plum workload-management
system. It fetches the desired assignment list from the controller,
downloads and unpacks application artifacts, spawns and monitors child
processes with graceful termination, reports lifecycle transitions, and
registers service endpoints on behalf of its instances.

Configuration comes from flags, the environment (AGENT_NODE_ID,
CONTROLLER_BASE, AGENT_DATA_DIR, ...), an optional .env file, and an
optional YAML config file, in that order of precedence.`,
	Version: config.Version,
	RunE:    runAgent,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"plum-agent version %s\nCommit: %s\nBuilt: %s\n",
		config.Version, config.Commit, config.BuildTime,
	))

	rootCmd.Flags().String("config", "", "Path to YAML config file")
	rootCmd.Flags().String("node-id", "", "Node identity (overrides AGENT_NODE_ID)")
	rootCmd.Flags().String("controller", "", "Controller base URL (overrides CONTROLLER_BASE)")
	rootCmd.Flags().String("data-dir", "", "On-disk state root (overrides AGENT_DATA_DIR)")
	rootCmd.Flags().String("metrics-addr", "", "Prometheus listen address (empty disables)")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("log-json", false, "Emit JSON logs instead of console output")
}

func runAgent(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over every other configuration layer.
	if v, _ := cmd.Flags().GetString("node-id"); v != "" {
		cfg.NodeID = v
	}
	if v, _ := cmd.Flags().GetString("controller"); v != "" {
		cfg.Controller = v
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("metrics-addr"); v != "" {
		cfg.MetricsAddr = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetBool("log-json"); v {
		cfg.LogJSON = true
	}

	log.Setup(log.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	logger := log.WithNodeID(cfg.NodeID)
	logger.Info().
		Str("controller", cfg.Controller).
		Str("data_dir", cfg.DataDir).
		Str("version", config.Version).
		Msg("starting plum agent")

	// The data directory is the only resource whose absence is fatal.
	nodeDir := cfg.NodeDir()
	if err := os.MkdirAll(nodeDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	store, err := state.Open(nodeDir)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr)
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listener enabled")
	}

	client := transport.NewClient()
	recon := reconciler.New(reconciler.Config{
		NodeID:         cfg.NodeID,
		Controller:     cfg.Controller,
		ControllerGRPC: cfg.ControllerGRPC,
		Client:         client,
		Artifacts:      artifact.NewStore(nodeDir, cfg.Controller, client),
		Reporter:       report.NewReporter(cfg.Controller, cfg.NodeID, cfg.IP, client),
		Store:          store,
		TickInterval:   cfg.TickInterval,
		DrainTimeout:   cfg.DrainTimeout,
	})
	recon.Recover()

	nudger := nudge.New(cfg.Controller, cfg.NodeID)
	nudger.Start()

	// Shutdown is signal-driven: the handler only flips the stop channel,
	// the reconcile loop notices at its sleep point and drains.
	stopCh := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("shutdown requested")
		close(stopCh)
	}()

	recon.Run(stopCh, nudger.C())
	nudger.Stop()

	logger.Info().Msg("agent stopped")
	return nil
}
