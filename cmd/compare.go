package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type comparison struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Compare  int    `json:"compare" yaml:"compare"`
	Equal    bool   `json:"equal" yaml:"equal"`
	Contains bool   `json:"contains" yaml:"contains"`
	Before   bool   `json:"before" yaml:"before"`
	After    bool   `json:"after" yaml:"after"`
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two periods",
		Long: `Print how period a relates to period b: their sort order (-1, 0 or 1),
whether they cover the same months, whether a contains b, and whether a ends
before b starts or starts after b ends.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := a.parseAll(args)
			if err != nil {
				return err
			}
			pa, pb := periods[0], periods[1]

			c := comparison{
				A:        pa.String(),
				B:        pb.String(),
				Compare:  pa.Compare(pb),
				Equal:    pa.Equal(pb),
				Contains: pa.Contains(pb),
				Before:   pa.IsBefore(pb),
				After:    pa.IsAfter(pb),
			}
			return a.write(cmd.OutOrStdout(), c, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s vs %s\ncompare   %d\nequal     %t\ncontains  %t\nbefore    %t\nafter     %t\n",
					c.A, c.B, c.Compare, c.Equal, c.Contains, c.Before, c.After)
				return err
			})
		},
	}
}
