// Command advisory runs the Mianwali crop advisory service and answers
// catalog queries from the command line.
//
//	@title						Mianwali Crop Advisory API
//	@version					1.0
//	@description				Crop catalog, recommendations and audit history for the Mianwali District advisory service.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mianwali/crop-advisory/internal/app"
	"github.com/mianwali/crop-advisory/internal/core/service"
	"github.com/mianwali/crop-advisory/internal/infrastructure/config"
	"github.com/mianwali/crop-advisory/pkg/logger"
)

// newRootCmd builds the command tree. Config is read from the environment
// before any subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		cfg      *config.Config
		seedFile string
		verbose  bool
	)

	root := &cobra.Command{
		Use:           "advisory",
		Short:         "Mianwali District crop advisory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if seedFile != "" {
				loaded.Seed.File = seedFile
			}
			if verbose {
				loaded.LogLevel = "debug"
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&seedFile, "seed", "", "Seed file (default: embedded seed, or SEED_FILE)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	getCfg := func() *config.Config { return cfg }
	root.AddCommand(
		newServeCmd(getCfg),
		newRecommendCmd(getCfg),
		newCropsCmd(getCfg),
		newSoilCmd(getCfg),
	)
	return root
}

// buildAdvisory loads the seed and returns the service, logging to w.
func buildAdvisory(cfg *config.Config, w io.Writer) (*service.Advisory, zerolog.Logger, error) {
	opts := logger.OptionsFor(cfg.Env, cfg.LogLevel)
	opts.Output = w
	log := logger.Init(opts)

	svc, err := app.NewAdvisory(cfg.Seed, log)
	if err != nil {
		return nil, log, err
	}
	return svc, log, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
