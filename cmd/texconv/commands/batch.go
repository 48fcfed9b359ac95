// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package commands

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/woozymasta/tex/internal/config"
	"github.com/woozymasta/tex/internal/logger"
)

type batchJob struct {
	in  string
	out string
}

// batchStats counts batch outcomes.
type batchStats struct {
	converted atomic.Int64
	failed    atomic.Int64
}

// collectTEX lists every .tex file under root.
func collectTEX(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".tex") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return files, nil
}

// runBatch converts files with a bounded worker pool. A failed file is
// logged and counted without stopping the rest.
func runBatch(ctx context.Context, inDir, outDir string, files []string, to target, cfg *config.Config) *batchStats {
	stats := &batchStats{}
	numWorkers := cfg.Workers
	jobs := make(chan batchJob, numWorkers*2)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for job := range jobs {
			if err := convertFile(job.in, job.out, to, cfg); err != nil {
				stats.failed.Add(1)
				logger.Error("conversion failed", logger.Path(job.in), logger.Err(err))
				continue
			}
			stats.converted.Add(1)
		}
	}

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker()
	}

dispatch:
	for _, in := range files {
		rel, err := filepath.Rel(inDir, in)
		if err != nil {
			rel = filepath.Base(in)
		}
		job := batchJob{in: in, out: filepath.Join(outDir, replaceExt(rel, to.ext()))}

		select {
		case jobs <- job:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return stats
}

func newBatchCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Convert every TEX file under a directory",
		Long: `Convert every .tex file under input-dir, mirroring the directory
layout into output-dir. Files are processed by a pool of workers.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toName, _ := cmd.Flags().GetString("to")
			to, err := parseTarget(toName)
			if err != nil {
				return err
			}

			files, err := collectTEX(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				logger.Warn("no .tex files found", logger.Path(args[0]))
				return nil
			}

			start := time.Now()
			logger.Info("batch started", logger.Path(args[0]), "files", len(files), "workers", st.cfg.Workers)

			stats := runBatch(cmd.Context(), args[0], args[1], files, to, st.cfg)
			converted, failed := stats.converted.Load(), stats.failed.Load()

			logger.Info("batch finished",
				"converted", converted,
				"failed", failed,
				logger.KeyDuration, time.Since(start).Milliseconds(),
			)

			if err := cmd.Context().Err(); err != nil {
				return fmt.Errorf("batch interrupted: %w", err)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("to", string(targetDDS), "Output type (dds|png|edds)")
	flags.IntP("workers", "w", 0, "Worker count (defaults to the number of CPUs)")
	flags.Bool("compress", true, "LZ4 compress EDDS mip levels")

	return cmd
}
