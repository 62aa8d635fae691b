// Package cli implements phishctl, the operator tool for the scan stores.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"phishguard/internal/config"
	"phishguard/internal/wiring"
)

var Version = "0.1.0"

type app struct {
	v *viper.Viper
	// open is swapped out in tests.
	open func(ctx context.Context, databaseURL string, migrate bool) (wiring.Stores, error)
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), open: wiring.Open}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "phishctl",
		Short:         "Maintenance commands for the phishguard scan stores",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags; PHISHGUARD_DATABASE_URL etc. override defaults.
	root.PersistentFlags().String("database-url", "", "Postgres connection string (falls back to DATABASE_URL)")
	root.PersistentFlags().String("scorer-url", "", "Scoring service base URL (falls back to SCORER_URL)")
	root.PersistentFlags().Duration("scorer-timeout", 0, "Per-request scorer timeout (falls back to SCORER_TIMEOUT)")
	_ = a.v.BindPFlag("database-url", root.PersistentFlags().Lookup("database-url"))
	_ = a.v.BindPFlag("scorer-url", root.PersistentFlags().Lookup("scorer-url"))
	_ = a.v.BindPFlag("scorer-timeout", root.PersistentFlags().Lookup("scorer-timeout"))

	a.v.SetEnvPrefix("PHISHGUARD")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.newMigrateCmd())
	root.AddCommand(a.newStatsCmd())
	root.AddCommand(a.newRebuildCmd())
	root.AddCommand(a.newRescanCmd())
	return root
}

// settings merges flags and PHISHGUARD_* variables over the server config.
func (a *app) settings() config.Config {
	cfg, _ := config.Load()
	if s := a.v.GetString("database-url"); s != "" {
		cfg.DatabaseURL = s
	}
	if s := a.v.GetString("scorer-url"); s != "" {
		cfg.ScorerURL = s
	}
	if d := a.v.GetDuration("scorer-timeout"); d > 0 {
		cfg.ScorerTimeout = d
	}
	return cfg
}

func (a *app) stores(ctx context.Context, migrate bool) (wiring.Stores, error) {
	return a.open(ctx, a.settings().DatabaseURL, migrate)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, 10*time.Minute)
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
