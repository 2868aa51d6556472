package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mianwali/crop-advisory/internal/api"
	"github.com/mianwali/crop-advisory/internal/infrastructure/config"
	httpserver "github.com/mianwali/crop-advisory/internal/infrastructure/http"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			svc, log, err := buildAdvisory(c, os.Stdout)
			if err != nil {
				return err
			}

			e := api.NewRouter(svc, api.RouterConfig{
				JWTSecret: c.JWTSecret,
				TokenTTL:  c.TokenTTL,
				Logger:    log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Str("env", c.Env).Str("port", c.Port).Msg("starting advisory api")
			return httpserver.NewServer(e, ":"+c.Port, log).Run(ctx)
		},
	}
}
