package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/napolitain/bulkbuild/internal/config"
	"github.com/napolitain/bulkbuild/internal/logger"
)

var (
	logLevel string
	quiet    bool

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bulkbuild",
		Short: "Bulk purchase calculator for incremental games",
		Long: `Computes how many units of an item with geometrically growing prices
the current stockpile can pay for, and runs build automation passes
over a saved game snapshot.`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(newAffordCmd(), newPricesCmd(), newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	logger.Init(c.Logger())
	cfg = c
	return nil
}
