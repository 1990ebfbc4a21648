package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxdesk/config"
	"github.com/rustyeddy/fxdesk/internal/logging"
)

const version = "0.3.0"

// RootConfig carries the persistent flags and, once PersistentPreRunE has
// run, the loaded configuration.
type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	Console    bool

	Cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:   "fxdesk",
		Short: "fxdesk: risk calculator and plan gating for the FX bot dashboard",
		Long: `fxdesk backs the trading-bot dashboard.

It provides:
  - Position sizing from a risk budget and stop-loss distance
  - Risk:reward and advisory risk checks
  - Subscription tier feature gating
  - A JSON API and a simulated broker for the dashboard
  - A SQLite journal of calculations and gate decisions`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite journal database (enables journaling)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.Console, "console", false, "Human-readable log output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(rc.ConfigPath)
		if err != nil {
			return err
		}
		if rc.DBPath != "" {
			cfg.Journal.DBPath = rc.DBPath
			cfg.Journal.Enabled = true
		}
		if rc.LogLevel != "" {
			cfg.Log.Level = rc.LogLevel
		}
		if rc.Console {
			cfg.Log.Console = true
		}
		if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Console); err != nil {
			return err
		}
		rc.Cfg = cfg
		return nil
	}

	cmd.AddCommand(
		newCalcCmd(rc),
		newGateCmd(rc),
		newFeaturesCmd(rc),
		newConfigCmd(rc),
		newJournalCmd(rc),
		newServeCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fxdesk %s\n", version)
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
