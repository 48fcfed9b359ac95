// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/woozymasta/tex"
	"github.com/woozymasta/tex/internal/logger"
)

func newEncodeCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input.png> [output.dds]",
		Short: "Encode a PNG image as DDS",
		Long: `Encode a PNG image as DDS with a generated mip chain.

Supported formats: dxt1 (bc1), dxt3 (bc2), dxt5 (bc3), bc4, bc5, rgba8, bgra8.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			in := args[0]
			out := replaceExt(in, targetDDS.ext())
			if len(args) == 2 {
				out = args[1]
			}

			opts, err := st.cfg.WriteOptions()
			if err != nil {
				return err
			}

			start := time.Now()
			f, err := os.Open(in) //nolint:gosec // user supplied path
			if err != nil {
				return fmt.Errorf("%w: %q: %v", tex.ErrOpenFile, in, err)
			}
			defer func() { _ = f.Close() }()

			var buf bytes.Buffer
			if err := tex.ConvertPNG(&buf, f, opts); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			if err := writeOutput(out, buf.Bytes()); err != nil {
				return err
			}

			logger.Info("encoded",
				logger.Path(in),
				logger.Output(out),
				logger.KeyFormat, st.cfg.DDS.Format,
				logger.KeyDuration, time.Since(start).Milliseconds(),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "bgra8", "DDS pixel format")
	flags.IntP("mipmaps", "m", 0, "Maximum mip levels (0 for the full chain)")
	flags.String("quality", "default", "BCn encoder quality (default|fast)")

	return cmd
}
