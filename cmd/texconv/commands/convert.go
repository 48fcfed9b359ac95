// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/woozymasta/tex"
	"github.com/woozymasta/tex/internal/config"
	"github.com/woozymasta/tex/internal/logger"
)

// target is an output representation of a normalized texture.
type target string

const (
	targetDDS  target = "dds"
	targetPNG  target = "png"
	targetEDDS target = "edds"
)

func parseTarget(s string) (target, error) {
	switch t := target(strings.ToLower(strings.TrimSpace(s))); t {
	case targetDDS, targetPNG, targetEDDS:
		return t, nil
	default:
		return "", fmt.Errorf("invalid target %q (valid: dds, png, edds)", s)
	}
}

func (t target) ext() string {
	return "." + string(t)
}

// render writes dds in the target representation.
func render(w io.Writer, dds []byte, to target, cfg *config.Config) error {
	switch to {
	case targetDDS:
		_, err := w.Write(dds)
		return err
	case targetPNG:
		return tex.EncodePNG(w, dds, nil)
	case targetEDDS:
		return tex.ConvertToEDDS(w, dds, cfg.EDDSOptions())
	default:
		return fmt.Errorf("unknown target %q", to)
	}
}

// convertFile converts in and writes the result to out. Nothing is written
// when conversion fails.
func convertFile(in, out string, to target, cfg *config.Config) error {
	start := time.Now()

	res, err := tex.LoadFile(in)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render(&buf, res.Data, to, cfg); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if err := writeOutput(out, buf.Bytes()); err != nil {
		return err
	}

	args := []any{
		logger.Path(in),
		logger.Output(out),
		logger.KeyFormat, string(to),
		logger.KeyDuration, time.Since(start).Milliseconds(),
	}
	if res.Unwrapped() {
		args = append(args,
			logger.KeyVersion, res.Container.Version.String(),
			logger.KeyRepairs, res.Repairs.String(),
		)
	}
	logger.Info("converted", args...)

	return nil
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // output files are meant to be shared
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func newConvertCmd(st *state, to target) *cobra.Command {
	short := map[target]string{
		targetDDS:  "Unwrap a TEX container into a normalized DDS file",
		targetPNG:  "Decode the top level of a TEX or DDS file to PNG",
		targetEDDS: "Repackage a TEX or DDS file as EDDS",
	}[to]

	cmd := &cobra.Command{
		Use:   string(to) + " <input> [output]",
		Short: short,
		Long: short + `.

When output is omitted it is written next to the input with the
extension replaced.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			in := args[0]
			out := replaceExt(in, to.ext())
			if len(args) == 2 {
				out = args[1]
			}
			return convertFile(in, out, to, st.cfg)
		},
	}

	if to == targetEDDS {
		cmd.Flags().Bool("compress", true, "LZ4 compress mip levels when it saves space")
	}

	return cmd
}
