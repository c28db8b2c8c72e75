package dotsentry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/diff"
	"github.com/dotsentry/dotsentry/internal/report"
)

var (
	flagDiffReverse bool
	flagDiffValues  bool
	flagDiffPatch   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "diff <file> <reference>",
		Short: "Compare two env files",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagDiffReverse, "reverse", false, "swap the two files before comparing")
	cmd.Flags().BoolVar(&flagDiffValues, "values", false, "show values for missing and extra variables")
	cmd.Flags().BoolVar(&flagDiffPatch, "patch", false, "print an env snippet that adds the missing variables")
}

func runDiff(_ *cobra.Command, args []string) error {
	local, global := loadConfigs()
	cfg := parserConfig(local, global)

	target, err := parseFile(args[0], cfg)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	reference, err := parseFile(args[1], cfg)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[1], err)
	}

	res := diff.Compare(target, reference, flagDiffReverse)

	if flagJSON {
		return report.WriteJSON(os.Stdout, res)
	}

	if flagDiffPatch {
		if len(res.Missing) == 0 {
			return nil
		}
		fmt.Printf("# variables missing from %s\n", args[0])
		for _, e := range res.Missing {
			fmt.Printf("%s=%s\n", e.Name, e.Value)
		}
		return nil
	}

	if res.Empty() {
		fmt.Println("Files are in sync")
		return nil
	}

	if len(res.Missing) > 0 {
		fmt.Printf("Missing from %s:\n", args[0])
		for _, e := range res.Missing {
			if flagDiffValues {
				fmt.Printf("  - %s=%s\n", e.Name, e.Value)
			} else {
				fmt.Printf("  - %s\n", e.Name)
			}
		}
	}
	if len(res.Extra) > 0 {
		fmt.Printf("Only in %s:\n", args[0])
		for _, e := range res.Extra {
			if flagDiffValues {
				fmt.Printf("  + %s=%s\n", e.Name, e.Value)
			} else {
				fmt.Printf("  + %s\n", e.Name)
			}
		}
	}
	if len(res.Changed) > 0 {
		fmt.Println("Changed:")
		for _, c := range res.Changed {
			fmt.Printf("  ~ %s: %s -> %s\n", c.Name, c.From, c.To)
		}
	}

	fmt.Printf("\n%d missing, %d extra, %d changed\n", len(res.Missing), len(res.Extra), len(res.Changed))
	os.Exit(1)
	return nil
}
