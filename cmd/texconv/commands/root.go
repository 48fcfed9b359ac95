// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

// Package commands implements the texconv command line.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/woozymasta/tex/internal/config"
	"github.com/woozymasta/tex/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":     "log-level",
	"log.format":    "log-format",
	"log.output":    "log-output",
	"workers":       "workers",
	"dds.format":    "format",
	"dds.mipmaps":   "mipmaps",
	"dds.quality":   "quality",
	"edds.compress": "compress",
}

// state carries the configuration resolved before a subcommand runs.
type state struct {
	cfg *config.Config
}

func (s *state) load(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags(), flagKeys); err != nil {
		return err
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s.cfg = cfg
	return nil
}

// NewRootCmd builds the texconv command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "texconv",
		Short: "Convert legacy TEX textures to DDS, PNG and EDDS",
		Long: `texconv unwraps TEX containers into standard DDS files and repairs
the legacy pixel format fields that strict DDS readers reject.

Normalized textures can be decoded to PNG or repackaged as EDDS, and PNG
images can be encoded back to DDS.

Use "texconv [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return st.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "Path to YAML config file")
	pf.String("log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	pf.String("log-format", "text", "Log format (text|json)")
	pf.String("log-output", "stderr", "Log output (stdout|stderr|file path)")

	root.AddCommand(
		newInfoCmd(st),
		newConvertCmd(st, targetDDS),
		newConvertCmd(st, targetPNG),
		newConvertCmd(st, targetEDDS),
		newEncodeCmd(st),
		newBatchCmd(st),
		newVersionCmd(),
	)
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texconv %s (commit %s, built %s)\n", Version, Commit, Date)
		},
	}
}
