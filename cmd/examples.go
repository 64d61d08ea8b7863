package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/fixtures"
)

func newExamplesCmd(a *app) *cobra.Command {
	var raw bool

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "List example period strings and what they mean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if raw {
				_, err := cmd.OutOrStdout().Write(fixtures.Raw())
				return err
			}

			cases, err := fixtures.Cases()
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), cases, func(w io.Writer) error {
				maxLen := maxInputLen(cases)
				for _, c := range cases {
					if _, err := fmt.Fprintf(w, "  %-*s  %s\n", maxLen, c.Input, c.Description); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintln(w, "\nFiscal examples assume a fiscal year starting in July.")
				return err
			})
		},
	}

	examplesCmd.Flags().BoolVar(&raw, "raw", false, "print the embedded fixture file as-is")
	return examplesCmd
}

// maxInputLen returns the length of the longest example input.
func maxInputLen(cases []fixtures.Case) int {
	maxLen := 0
	for _, c := range cases {
		if len(c.Input) > maxLen {
			maxLen = len(c.Input)
		}
	}
	return maxLen
}
