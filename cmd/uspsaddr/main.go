package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TFMV/uspsaddress/pkg/config"
	"github.com/TFMV/uspsaddress/pkg/db"
	"github.com/TFMV/uspsaddress/pkg/utils"
)

// app carries what every subcommand shares once the root command has loaded
// the configuration.
type app struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "uspsaddr",
		Short:         "US postal address normalization",
		Long:          `Normalize, fingerprint and compare US postal addresses, and deduplicate address files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("CONFIG_PATH"), "Path to the YAML config file")

	rootCmd.AddCommand(createNormalizeCmd())
	rootCmd.AddCommand(createFingerprintCmd())
	rootCmd.AddCommand(createCompareCmd())
	rootCmd.AddCommand(createDedupeCmd(a))
	rootCmd.AddCommand(createLoadCmd(a))
	rootCmd.AddCommand(createMigrateCmd(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = utils.NewLogger(cmd.ErrOrStderr(), "cli", cfg.Log.Level, cfg.Log.Pretty)
	return nil
}

// connect opens the pool for commands that need the database.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if err := a.cfg.ValidateDB(); err != nil {
		return nil, err
	}
	return db.NewConnection(ctx, a.cfg.DBCreds)
}
