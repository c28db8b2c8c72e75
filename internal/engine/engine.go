// Package engine discovers files under a root and runs the secret scanner
// over them concurrently. It owns everything the scanner itself does not:
// traversal, size ceilings, binary detection, and worker fan-out.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dotsentry/dotsentry/internal/scanner"
	"github.com/dotsentry/dotsentry/internal/types"
)

// DefaultMaxBytes is the per-file size ceiling. Larger files are skipped with
// a warning rather than truncated.
const DefaultMaxBytes = 10 * 1024 * 1024

// Config controls scan scope and performance.
type Config struct {
	Root            string
	Include         string
	Exclude         string
	MaxBytes        int64
	Threads         int
	DefaultExcludes bool

	Scan scanner.Options
}

// Result contains findings and scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration

	// Warnings records skipped oversized files.
	Warnings []string

	// Errors records per-file read failures. One unreadable file never
	// aborts the scan.
	Errors []error
}

// Scan runs a scan and returns only findings.
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats discovers eligible files, scans them on a bounded worker
// pool, and returns findings in deterministic order along with counters.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}

	started := time.Now()

	paths, err := Walk(ctx, cfg)
	if err != nil {
		return result, fmt.Errorf("walk %s: %w", cfg.Root, err)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)

	for _, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(cfg.Root, rel)

			info, err := os.Stat(full)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("%s: %w", rel, err))
				mu.Unlock()
				return nil
			}
			if info.Size() > cfg.MaxBytes {
				mu.Lock()
				result.FilesSkipped++
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: skipped, %d bytes exceeds limit of %d", rel, info.Size(), cfg.MaxBytes))
				mu.Unlock()
				return nil
			}

			data, err := os.ReadFile(full)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("%s: %w", rel, err))
				mu.Unlock()
				return nil
			}
			if looksBinary(data) {
				mu.Lock()
				result.FilesSkipped++
				mu.Unlock()
				return nil
			}
			if strings.Contains(string(data), "dotsentry:ignore-file") {
				mu.Lock()
				result.FilesSkipped++
				mu.Unlock()
				return nil
			}

			findings := scanner.Scan([]scanner.File{{Path: rel, Text: string(data)}}, cfg.Scan)
			mu.Lock()
			result.FilesScanned++
			result.Findings = append(result.Findings, findings...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	// workers finish in arbitrary order
	scanner.Sort(result.Findings)
	result.Duration = time.Since(started)
	return result, nil
}
