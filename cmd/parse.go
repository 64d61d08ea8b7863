package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/internal/period"
)

func newParseCmd(a *app) *cobra.Command {
	var to string

	parseCmd := &cobra.Command{
		Use:   "parse <period>...",
		Short: "Parse period strings and print their canonical form and bounds",
		Example: `  periodctl parse "Q2 FY2023"
  periodctl parse "CY2022 Sep" --to fiscal
  periodctl parse FY2024 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := a.parseAll(args)
			if err != nil {
				return err
			}

			if to != "" {
				kind, err := period.ParseKind(to)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				for i, p := range periods {
					periods[i] = convertTo(p, kind)
				}
			}

			views := make([]periodView, len(periods))
			for i, p := range periods {
				views[i] = newPeriodView(args[i], p)
			}
			return a.write(cmd.OutOrStdout(), views, func(w io.Writer) error {
				for _, p := range periods {
					if _, err := fmt.Fprintln(w, describe(p)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	parseCmd.Flags().StringVar(&to, "to", "", "convert to calendar or fiscal before printing")
	return parseCmd
}

func convertTo(p period.Period, kind period.Kind) period.Period {
	if kind == period.Fiscal {
		return p.ToFiscal()
	}
	return p.ToCalendar()
}
