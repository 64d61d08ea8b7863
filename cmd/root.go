// Package cmd implements the periodctl command tree.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/internal/config"
	"github.com/zjrosen/bizperiod/internal/log"
	"github.com/zjrosen/bizperiod/internal/period"
)

// app carries the state shared by every command once configuration is loaded.
type app struct {
	configFile string
	now        func() time.Time

	cfg    config.Config
	parser *period.Parser
}

// NewRootCmd returns a fresh periodctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	rootCmd := &cobra.Command{
		Use:   "periodctl",
		Short: "Parse, convert and sort calendar and fiscal business periods",
		Long: `periodctl works with business period strings such as "CY2022 Sep",
"FY2023 Q1", "Q2 FY2023", "CY2022 Jan-Mar", "TBD" and "Unknown".

The fiscal year is named after the calendar year it ends in and starts in
July unless configured otherwise.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default "+config.DefaultConfigPath()+")")
	flags.Int("fiscal-start", period.DefaultFiscalYearStart, "calendar month (1-12) the fiscal year starts in")
	flags.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newParseCmd(a),
		newSortCmd(a),
		newCompareCmd(a),
		newCurrentCmd(a),
		newExamplesCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load resolves configuration from defaults, the config file, the environment and
// flags, in increasing precedence.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"fiscal_year_start_month": "fiscal-start",
		"output":                  "output",
		"log_level":               "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := log.Init(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}

	parser, err := cfg.NewParser()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.parser = parser

	log.Debug(log.CatCLI, "Configuration loaded",
		"command", cmd.Name(),
		"fiscal_year_start_month", cfg.FiscalYearStartMonth,
		"output", cfg.Output,
		"parser_cache", cfg.Parser.Cache)
	return nil
}

// parseAll parses every input, failing on the first invalid one.
func (a *app) parseAll(inputs []string) ([]period.Period, error) {
	periods := make([]period.Period, 0, len(inputs))
	for _, in := range inputs {
		p, err := a.parser.Parse(in)
		if err != nil {
			log.Debug(log.CatParse, "Rejected period", "input", in, "error", err)
			return nil, fmt.Errorf("parsing %q: %w", in, err)
		}
		periods = append(periods, p)
	}
	return periods, nil
}
