package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxdesk/journal"
	"github.com/rustyeddy/fxdesk/metrics"
	"github.com/rustyeddy/fxdesk/tier"
)

// profileFor returns the configured profile, or a fresh one for tierName.
func profileFor(rc *RootConfig, tierName string) (tier.Profile, error) {
	if tierName == "" {
		return rc.Cfg.Profile, nil
	}
	t, err := tier.ParseTier(tierName)
	if err != nil {
		return tier.Profile{}, err
	}
	return tier.Profile{Tier: t}, nil
}

func newGateCmd(rc *RootConfig) *cobra.Command {
	var tierName string

	cmd := &cobra.Command{
		Use:   "gate <feature>",
		Short: "Check whether a plan unlocks a feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profileFor(rc, tierName)
			if err != nil {
				return err
			}
			f := tier.Feature(args[0])
			ok := p.Allows(f)
			metrics.ObserveGateCheck(f, ok)

			if rc.Cfg.Journal.Enabled {
				j, err := journal.NewSQLite(rc.Cfg.Journal.DBPath)
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				defer j.Close()
				if err := j.RecordGateCheck(journal.GateCheck{Tier: p.Tier.String(), Feature: string(f), Enabled: ok}); err != nil {
					return err
				}
			}

			state := "disabled"
			if ok {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s on %s\n", f, state, p.Tier)
			if p.TrialExpired() {
				fmt.Fprintln(cmd.OutOrStdout(), "trial expired: upgrade to continue")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tierName, "tier", "t", "", "tier to check (default from config)")
	return cmd
}

func newFeaturesCmd(rc *RootConfig) *cobra.Command {
	var tierName string

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List features and the plan each needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profileFor(rc, tierName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plan: %s", p.Tier)
			if p.Tier == tier.Trial {
				fmt.Fprintf(out, " (%d demo sessions left)", p.TrialSessionsLeft())
			}
			fmt.Fprintln(out)

			for _, f := range tier.Features() {
				min, _ := tier.MinTier(f)
				mark := " "
				if p.Allows(f) {
					mark = "✓"
				}
				fmt.Fprintf(out, "%s %-20s %s\n", mark, f, min)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tierName, "tier", "t", "", "tier to list (default from config)")
	return cmd
}
