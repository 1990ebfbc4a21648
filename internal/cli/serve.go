package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxdesk/api"
	"github.com/rustyeddy/fxdesk/broker/sim"
	"github.com/rustyeddy/fxdesk/journal"
)

func newServeCmd(rc *RootConfig) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API against the simulated broker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			delay, err := cfg.Broker.TestDelayDuration()
			if err != nil {
				return fmt.Errorf("broker.test_delay: %w", err)
			}
			interval, err := cfg.Broker.TickIntervalDuration()
			if err != nil {
				return fmt.Errorf("broker.tick_interval: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b := sim.New(sim.WithSuccessRate(cfg.Broker.SuccessRate), sim.WithDelay(delay))
			go b.Run(ctx, interval)

			var j journal.Journal
			if cfg.Journal.Enabled {
				sj, err := journal.NewSQLite(cfg.Journal.DBPath)
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				defer sj.Close()
				j = sj
				log.Info().Str("db", cfg.Journal.DBPath).Msg("journal enabled")
			}

			return api.New(cfg, b, j).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

