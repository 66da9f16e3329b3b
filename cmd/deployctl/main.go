package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/command"
	"github.com/getpup/deploy-bootstrap/config"
	"github.com/getpup/deploy-bootstrap/logging"
	"github.com/getpup/deploy-bootstrap/metrics"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "deployctl:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deployctl",
		Short: "Deployment bootstrap for the web application",
		Long: `deployctl prepares a release and starts the application server.

"run" executes the bootstrap sequence (database probe, migrations, media
directories, admin account, translations, static assets) and then replaces
itself with the application server. "predeploy" performs the pre-flight
checks without starting anything.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newPredeployCmd())
	return root
}

// app bundles the pieces both subcommands need.
type app struct {
	cfg       config.Config
	runID     string
	base      *zap.Logger
	logger    bootstrap.Logger
	collector *metrics.Collector
	commander command.Commander
}

func newApp(development bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var base *zap.Logger
	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := logging.FromZap(base.With(
		zap.String("run_id", runID),
		zap.String("app", cfg.AppName),
	))

	commander := command.New(command.Config{
		Python:     cfg.Python,
		ManagePath: cfg.ManagePath,
		Dir:        cfg.AppDir,
		Logger:     logger,
	})

	a := &app{
		cfg:       cfg,
		runID:     runID,
		base:      base,
		logger:    logger,
		collector: metrics.NewCollector(cfg.AppName),
		commander: commander,
	}

	if cfg.MetricsAddr != "" {
		// The server dies with the process; no shutdown needed for a tool
		// whose last act is exec.
		srv := metrics.NewServer(cfg.MetricsAddr)
		srv.Start()
	}

	return a, nil
}
