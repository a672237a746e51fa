// Command registryctl bootstraps the remote store and moves equipment in and
// out of spreadsheets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hvac_registry/internal/app"
	"hvac_registry/internal/config"
	"hvac_registry/internal/usecase"
	"hvac_registry/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is filled by the root command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	var (
		envFile string
		e       env
	)

	cmd := &cobra.Command{
		Use:           "registryctl",
		Short:         "Operate the HVAC equipment registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("load %s: %w", envFile, err)
			}

			e.cfg = config.Load()
			if err := e.cfg.Validate(); err != nil {
				return err
			}
			zl, err := logger.NewLogger(e.cfg.Log.Level, "console", "registryctl")
			if err != nil {
				return err
			}
			e.logger = zl
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")

	cmd.AddCommand(
		migrateCmd(&e),
		createTablesCmd(&e),
		listCmd(&e),
		exportCmd(&e),
		importCmd(&e),
	)
	return cmd
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// withCatalog opens the configured store, loads the caches and hands the
// catalog to fn.
func withCatalog(ctx context.Context, e *env, fn func(usecase.ICatalogUseCase) error) error {
	stores, err := app.OpenStores(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	catalog := app.NewCatalog(e.cfg, stores, nil, e.logger)
	if err := catalog.Load(ctx); err != nil {
		return err
	}
	return fn(catalog)
}
