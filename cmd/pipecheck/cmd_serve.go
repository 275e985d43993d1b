package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spboyer/pipecheck/internal/webapi"
	"github.com/spboyer/pipecheck/internal/webserver"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the subject service",
		Long: `Start the subject service: the minimal JSON API the challenge's
pipelines build, test, and deploy.

Configuration is read from the environment once at startup:
  APP_VERSION   service version string        (default 1.0.0)
  ENVIRONMENT   deployment environment name   (default development)
  PORT          listen port                   (default 5000)
  GIT_COMMIT    commit identifier             (default unknown)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := webserver.New(webserver.Config{API: webapi.LoadConfig()})
			return srv.ListenAndServe(ctx)
		},
	}
}
