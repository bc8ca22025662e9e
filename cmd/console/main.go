package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pghive/internal/adapters/console"
	"pghive/internal/config"
	"pghive/internal/core/services"
	"pghive/internal/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile     string
		billingMode string
		seed        bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:          "pghive",
		Short:        "Interactive PG management console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}

			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("billing-mode") {
				cfg.Billing.Mode = billingMode
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			log := logger.InitLogger(cfg.AppMode, logLevel)
			defer log.Sync() //nolint:errcheck

			store, err := config.ConnectStore(cfg)
			if err != nil {
				return err
			}
			owner, err := config.NewOwner(cfg, store, log)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if cfg.Seed {
				if err := config.NewSeeder(owner).Run(ctx); err != nil {
					log.Warn("⚠️ Failed to seed sample data", zap.Error(err))
				}
			}

			auth := services.NewAuthService(owner, "", 0, log)
			return console.New(owner, auth, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file (default .env)")
	cmd.Flags().StringVar(&billingMode, "billing-mode", "flat", "bulk billing mode: flat or cadence")
	cmd.Flags().BoolVar(&seed, "seed", true, "load the sample rooms and tenants")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")

	return cmd
}
