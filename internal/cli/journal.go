package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxdesk/journal"
)

func newJournalCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect recorded calculations and gate checks",
	}

	// Reading never depends on journal.enabled; --db or config picks the
	// file, which must already exist.
	open := func() (*journal.SQLite, error) {
		path := rc.Cfg.Journal.DBPath
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("no journal at %s (pass --db or set journal.db_path): %w", path, err)
			}
			return nil, err
		}
		return journal.NewSQLite(path)
	}

	var (
		limit  int
		asJSON bool
		gates  bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := open()
			if err != nil {
				return err
			}
			defer j.Close()

			out := cmd.OutOrStdout()
			if gates {
				gs, err := j.ListGateChecks(limit)
				if err != nil {
					return err
				}
				if asJSON {
					return json.NewEncoder(out).Encode(gs)
				}
				for _, g := range gs {
					fmt.Fprintf(out, "%s %-8s %-20s %t\n", g.Time.Format("2006-01-02 15:04:05"), g.Tier, g.Feature, g.Enabled)
				}
				return nil
			}

			cs, err := j.ListCalculations(limit)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(out).Encode(cs)
			}
			fmt.Fprint(out, journal.FormatCalculationsOrg(cs))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "max rows (0 = all)")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	listCmd.Flags().BoolVar(&gates, "gates", false, "list gate checks instead of calculations")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := open()
			if err != nil {
				return err
			}
			defer j.Close()

			c, err := j.GetCalculation(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatCalculationOrg(c))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
