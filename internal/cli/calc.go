package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/market"
	"github.com/rustyeddy/fxdesk/metrics"
	"github.com/rustyeddy/fxdesk/risk"
	"github.com/rustyeddy/fxdesk/tier"
)

func newCalcCmd(rc *RootConfig) *cobra.Command {
	var (
		instrument string
		in         risk.Input
		sl, tp     float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Recommend a lot size for a stop-loss and risk budget",
		Long: `Compute stop-loss distance in pips, risk:reward and the recommended
lot size. Pip size and pip value come from --instrument unless given.

Example:
  fxdesk calc --instrument EURUSD --entry 1.0875 --sl 1.0825 --tp 1.0975 --risk-amount 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Cfg
			if !cfg.Profile.Allows(tier.PositionHelpers) {
				return fmt.Errorf("position helpers are not available on the %s plan", cfg.Profile.Tier)
			}

			if cmd.Flags().Changed("sl") {
				in.StopLoss = &sl
			}
			if cmd.Flags().Changed("tp") {
				in.TakeProfit = &tp
			}
			in = cfg.FillDefaults(in)

			if instrument != "" {
				meta, err := market.Lookup(instrument)
				if err != nil {
					return err
				}
				instrument = meta.Name
				if in.PipSize == 0 {
					in.PipSize = meta.PipSize()
				}
				if in.PipValuePerLot == 0 {
					if v, ok := cfg.Risk.PipValue(meta.Name); ok {
						in.PipValuePerLot = v
					} else {
						v, err := market.PipValuePerLot(context.Background(), meta.Name, cfg.Account.Currency, market.NewTickStore())
						if err != nil {
							return fmt.Errorf("pip value for %s: %w (pass --pip-value)", meta.Name, err)
						}
						in.PipValuePerLot = v
					}
				}
			}

			res := risk.Calculate(in)
			metrics.ObserveCalculation()
			assessment := risk.Assess(cfg.Risk.Policy, in, res)

			if cfg.Journal.Enabled {
				j, err := journal.NewSQLite(cfg.Journal.DBPath)
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				defer j.Close()
				if err := j.RecordCalculation(journal.CalculationRecord{
					Instrument:     instrument,
					Entry:          in.Entry,
					StopLoss:       in.StopLoss,
					TakeProfit:     in.TakeProfit,
					RiskAmount:     res.RiskAmount,
					PipValuePerLot: in.PipValuePerLot,
					StopLossPips:   res.StopLossPips,
					RiskReward:     res.RiskRewardRatio,
					LotSize:        res.RecommendedLotSize,
				}); err != nil {
					return err
				}
			}
			log.Debug().Str("instrument", instrument).Float64("lots", res.RecommendedLotSize).Msg("calculated")

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"result": res, "assessment": assessment})
			}

			fmt.Fprintf(out, "SL distance:  %.1f pips\n", res.StopLossPips)
			fmt.Fprintf(out, "Risk:Reward:  %.2f\n", res.RiskRewardRatio)
			fmt.Fprintf(out, "Risk amount:  %.2f %s\n", res.RiskAmount, cfg.Account.Currency)
			fmt.Fprintf(out, "Lot size:     %.2f lots\n", res.RecommendedLotSize)
			for _, v := range assessment.Violations {
				fmt.Fprintf(out, "! %s: %s\n", v.Code, v.Msg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&instrument, "instrument", "i", "", "instrument, e.g. EURUSD or EUR_USD")
	f.Float64Var(&in.Entry, "entry", 0, "entry (or current) price")
	f.Float64Var(&sl, "sl", 0, "stop-loss price")
	f.Float64Var(&tp, "tp", 0, "take-profit price")
	f.Float64Var(&in.RiskAmount, "risk-amount", 0, "risk in account currency")
	f.Float64Var(&in.RiskPercent, "risk-pct", 0, "risk as percent of equity (0-100)")
	f.Float64Var(&in.Equity, "equity", 0, "account equity (default from config)")
	f.Float64Var(&in.PipSize, "pip-size", 0, "price size of one pip")
	f.Float64Var(&in.PipValuePerLot, "pip-value", 0, "pip value per standard lot")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("entry")

	return cmd
}
