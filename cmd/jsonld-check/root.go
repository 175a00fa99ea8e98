// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gemaraproj/jsonld-check/internal/jsonld"
	"github.com/gemaraproj/jsonld-check/internal/logger"
)

var (
	logLevel string
	log      = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "jsonld-check",
	Short: "Check the JSON-LD blocks of the site's pages",
	Long: `Reads index.html, about.html and what-we-do.html from the current directory,
finds every <script type="application/ld+json"> block and reports whether
each one is valid JSON, followed by an overall summary line.

The exit status is 0 whatever the outcome of the check; only a page that
cannot be read makes the command fail.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLevel, "diagnostic log level written to stderr (debug, info, warn, error)")
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	l, err := logger.New(logLevel, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	log = l
	return nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	defer func() { _ = log.Sync() }()

	v := jsonld.NewValidator(cmd.OutOrStdout(), log.Named("validator"))
	allValid, err := v.Run(jsonld.DefaultTargets)
	if err != nil {
		return err
	}
	log.Info("check finished", zap.Bool("valid", allValid))
	return nil
}
