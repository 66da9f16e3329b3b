package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getpup/deploy-bootstrap/i18n"
	"github.com/getpup/deploy-bootstrap/migrate"
	"github.com/getpup/deploy-bootstrap/probe"
)

func newPredeployCmd() *cobra.Command {
	var development bool

	cmd := &cobra.Command{
		Use:   "predeploy",
		Short: "Run pre-flight checks without starting the server",
		Long: `predeploy verifies the release is deployable: database reachability,
migration status, translation catalogs, and the framework's deploy
configuration check. Connectivity and pending migrations only warn;
translations and the configuration check are release-blocking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredeploy(cmd.Context(), development)
		},
	}

	cmd.Flags().BoolVar(&development, "dev", false, "human-readable logs")
	return cmd
}

func runPredeploy(ctx context.Context, development bool) error {
	a, err := newApp(development)
	if err != nil {
		return err
	}
	defer func() { _ = a.base.Sync() }()

	blocking := 0

	prober := probe.New(probe.Config{DatabaseURL: a.cfg.DatabaseURL, Logger: a.logger})
	if _, err := prober.Run(ctx); err != nil {
		a.logger.Warn(ctx, "database unreachable; deployment may still proceed", "error", err)
	}

	mig := migrate.New(migrate.Config{Commander: a.commander, Logger: a.logger, Collector: a.collector})
	if unapplied, err := mig.CountUnapplied(ctx); err != nil {
		a.logger.Warn(ctx, "could not determine migration status", "error", err)
	} else {
		a.collector.SetUnappliedMigrations(unapplied)
		if unapplied > 0 {
			a.logger.Warn(ctx, "migrations pending", "unapplied", unapplied)
		} else {
			a.logger.Info(ctx, "migrations up to date")
		}
	}

	compiler := i18n.New(i18n.Config{Commander: a.commander, LocaleDir: a.cfg.LocaleDir, Logger: a.logger})
	if _, err := compiler.Run(ctx); err != nil {
		a.logger.Error(ctx, "translation catalogs not deployable", "error", err)
		blocking++
	}

	if out, err := a.commander.Manage(ctx, "check", "--deploy"); err != nil {
		a.logger.Error(ctx, "deploy configuration check failed", "output", string(out), "error", err)
		blocking++
	} else {
		a.logger.Info(ctx, "deploy configuration check passed")
	}

	if blocking > 0 {
		return fmt.Errorf("predeploy: %d release-blocking check(s) failed", blocking)
	}

	a.logger.Info(ctx, "predeploy checks passed", "runID", a.runID)
	return nil
}
