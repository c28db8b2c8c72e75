package dotsentry

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/engine"
	"github.com/dotsentry/dotsentry/internal/report"
	"github.com/dotsentry/dotsentry/internal/scanner"
)

var (
	flagScanPath        string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagEntropy         float64
	flagNoRedact        bool
	flagTable           bool
	flagSARIF           bool
	flagAnnotations     bool
	flagBaseline        string
	flagUpdateBaseline  bool
	flagWithPlaceholder bool
	flagScanExitZero    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for leaked secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagScanPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "include glob (doublestar, e.g. '**/*.env')")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "exclude glob")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 10MB)")
	cmd.Flags().Float64Var(&flagEntropy, "entropy-threshold", 0, "entropy fallback threshold in bits/char (default 4.5)")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "print full matched secrets")
	cmd.Flags().BoolVar(&flagTable, "table", false, "render findings as a table")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	cmd.Flags().BoolVar(&flagAnnotations, "annotations", false, "emit GitHub Actions annotations")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "suppress findings recorded in this baseline file")
	cmd.Flags().BoolVar(&flagUpdateBaseline, "update-baseline", false, "write current findings to the baseline file")
	cmd.Flags().BoolVar(&flagWithPlaceholder, "with-placeholders", false, "also report documented example values")
	cmd.Flags().BoolVar(&flagScanExitZero, "exit-zero", false, "always exit 0, even with findings")
}

func runScan(_ *cobra.Command, _ []string) error {
	local, global := loadConfigs()

	scanOpts := scanner.DefaultOptions()
	redact := true
	if global.Redact != nil {
		redact = *global.Redact
	}
	if local.Redact != nil {
		redact = *local.Redact
	}
	if flagNoRedact {
		redact = false
	}
	scanOpts.Redact = redact
	scanOpts.IgnorePlaceholders = !flagWithPlaceholder
	if !flagWithPlaceholder {
		if local.Placeholders != nil {
			scanOpts.IgnorePlaceholders = *local.Placeholders
		} else if global.Placeholders != nil {
			scanOpts.IgnorePlaceholders = *global.Placeholders
		}
	}
	if th := pickFloat(flagEntropy, local.EntropyThreshold, global.EntropyThreshold); th > 0 {
		scanOpts.EntropyThreshold = th
	}
	if n := pickInt(0, local.MinTokenLength, global.MinTokenLength); n > 0 {
		scanOpts.MinTokenLength = n
	}

	cfg := engine.Config{
		Root:            flagScanPath,
		Include:         pickString(flagInclude, local.Include, global.Include),
		Exclude:         pickString(flagExclude, local.Exclude, global.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, local.MaxBytes, global.MaxBytes),
		Threads:         pickInt(flagThreads, local.Threads, global.Threads),
		DefaultExcludes: flagDefaultExcludes,
		Scan:            scanOpts,
	}

	res, err := engine.ScanWithStats(context.Background(), cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, "warning:", e)
	}

	findings := res.Findings
	baselinePath := pickString(flagBaseline, local.Baseline, global.Baseline)
	if baselinePath != "" && !flagUpdateBaseline {
		base, err := report.LoadBaseline(baselinePath)
		if err == nil {
			findings = report.FilterNew(findings, base)
		}
	}
	if flagUpdateBaseline {
		if baselinePath == "" {
			baselinePath = ".dotsentry-baseline.json"
		}
		if err := report.SaveBaseline(baselinePath, findings); err != nil {
			return err
		}
		fmt.Printf("Baseline written to %s (%d findings)\n", baselinePath, len(findings))
		return nil
	}

	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, findings); err != nil {
			return err
		}
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, findings, version); err != nil {
			return err
		}
	case flagAnnotations:
		report.WriteFindingAnnotations(os.Stdout, findings)
	case flagTable:
		if err := report.PrintFindingsTable(os.Stdout, findings); err != nil {
			return err
		}
	default:
		noColor := flagNoColor || !stdoutIsTTY()
		report.PrintFindings(os.Stdout, findings, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	failOn := pickString(flagFailOn, local.FailOn, global.FailOn)
	if flagStrict {
		failOn = "low"
	}
	if !flagScanExitZero && report.ShouldFail(findings, failOn) {
		os.Exit(1)
	}
	return nil
}
