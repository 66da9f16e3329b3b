package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getpup/deploy-bootstrap"
	"github.com/getpup/deploy-bootstrap/admin"
	"github.com/getpup/deploy-bootstrap/execproc"
	"github.com/getpup/deploy-bootstrap/i18n"
	"github.com/getpup/deploy-bootstrap/media"
	"github.com/getpup/deploy-bootstrap/migrate"
	"github.com/getpup/deploy-bootstrap/probe"
	"github.com/getpup/deploy-bootstrap/runner"
	"github.com/getpup/deploy-bootstrap/static"
)

func newRunCmd() *cobra.Command {
	var development bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bootstrap sequence, then exec the application server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd.Context(), development)
		},
	}

	cmd.Flags().BoolVar(&development, "dev", false, "human-readable logs")
	return cmd
}

func runBootstrap(ctx context.Context, development bool) error {
	a, err := newApp(development)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	steps := []bootstrap.Step{
		probe.New(probe.Config{
			DatabaseURL: a.cfg.DatabaseURL,
			Logger:      a.logger,
		}),
		migrate.New(migrate.Config{
			Commander: a.commander,
			Logger:    a.logger,
			Collector: a.collector,
		}),
		media.New(media.Config{
			VolumePath: a.cfg.VolumePath,
			Logger:     a.logger,
		}),
		admin.New(admin.Config{
			Commander: a.commander,
			Logger:    a.logger,
		}),
		i18n.New(i18n.Config{
			Commander: a.commander,
			LocaleDir: a.cfg.LocaleDir,
			Logger:    a.logger,
		}),
		static.New(static.Config{
			Commander:  a.commander,
			StaticRoot: a.cfg.StaticRoot,
			Logger:     a.logger,
		}),
	}

	seq := runner.New(runner.Config{
		RunID:     a.runID,
		Logger:    a.logger,
		Collector: a.collector,
	})

	if _, err := seq.Run(ctx, steps); err != nil {
		_ = a.base.Sync()
		return err
	}

	bind := fmt.Sprintf("0.0.0.0:%d", a.cfg.Port)
	a.logger.Info(ctx, "handing off to application server",
		"server", a.cfg.ServerBin,
		"bind", bind,
		"module", a.cfg.WSGIModule)
	_ = a.base.Sync()

	// On success this never returns.
	return execproc.Replace(a.cfg.ServerBin, []string{"--bind", bind, a.cfg.WSGIModule}, os.Environ())
}
