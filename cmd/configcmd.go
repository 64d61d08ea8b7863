package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/bizperiod/internal/config"
	"github.com/zjrosen/bizperiod/internal/log"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the periodctl configuration file",
	}
	configCmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(a))
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			log.Info(log.CatConfig, "Wrote default config", "path", path)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
			return err
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return initCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.write(cmd.OutOrStdout(), a.cfg, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "fiscal_year_start_month: %d\noutput: %s\nlog_level: %s\nparser.cache: %t\nparser.cache_ttl: %s\n",
					a.cfg.FiscalYearStartMonth, a.cfg.Output, a.cfg.LogLevel, a.cfg.Parser.Cache, a.cfg.Parser.CacheTTL)
				return err
			})
		},
	}
}
