package dotsentry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/config"
)

var (
	flagJSON            bool
	flagNoColor         bool
	flagThreads         int
	flagFailOn          string
	flagDefaultExcludes bool
	flagStrict          bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the dotsentry CLI.
var rootCmd = &cobra.Command{
	Use:           "dotsentry",
	Short:         "Validate, diff, convert and scan your .env files",
	Long:          "dotsentry parses environment files into an ordered model, validates them against a template, diffs environments, converts them to deployment formats, and scans for leaked secrets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the dotsentry CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "medium", "fail on low|medium|high findings")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "treat warnings as failures")
}

// loadConfigs returns local then global file config; missing files yield zero
// values so pick* helpers fall through cleanly.
func loadConfigs() (local, global config.FileConfig) {
	local, _ = config.LoadLocal(".")
	global, _ = config.LoadGlobal()
	return local, global
}
