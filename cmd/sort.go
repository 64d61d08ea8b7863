package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/internal/log"
	"github.com/zjrosen/bizperiod/internal/period"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [period...]",
		Short: "Sort periods chronologically",
		Long: `Sort periods by start month. Of two periods starting in the same month the
longer sorts first, and TBD and Unknown sort after every real period.

With no arguments, periods are read from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading periods: %w", err)
				}
			}

			periods, err := a.parseAll(inputs)
			if err != nil {
				return err
			}
			period.Sort(periods)
			log.Debug(log.CatCLI, "Sorted periods", "count", len(periods))

			out := make([]string, len(periods))
			for i, p := range periods {
				out[i] = p.String()
			}
			return a.write(cmd.OutOrStdout(), out, func(w io.Writer) error {
				for _, s := range out {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
