package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/internal/period"
)

func newCurrentCmd(a *app) *cobra.Command {
	var grain, kind string

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Print the period containing today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := period.ParseKind(kind)
			if err != nil {
				return fmt.Errorf("--kind: %w", err)
			}
			cfg := a.parser.Config()
			now := a.now()

			var p period.Period
			switch grain {
			case "month":
				p = cfg.MonthOf(now, k)
			case "quarter":
				p = cfg.QuarterOf(now, k)
			case "half":
				p = cfg.HalfOf(now, k)
			case "year":
				p = cfg.YearOf(now, k)
			default:
				return fmt.Errorf("--grain: unsupported granularity %q (want month, quarter, half or year)", grain)
			}

			return a.write(cmd.OutOrStdout(), newPeriodView("", p), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, describe(p))
				return err
			})
		},
	}

	currentCmd.Flags().StringVar(&grain, "grain", "month", "month, quarter, half or year")
	currentCmd.Flags().StringVar(&kind, "kind", "calendar", "calendar or fiscal")
	return currentCmd
}
