package dotsentry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/report"
	"github.com/dotsentry/dotsentry/internal/rules"
)

var (
	flagEnvFile      string
	flagTemplateFile string
	flagProduction   bool
	flagMinSecretLen int
	flagExitZero     bool
	flagVAnnotations bool
	flagVSarif       bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an env file against its template",
		Long:  "Parses both files, then checks for missing required variables, placeholder values, weak secrets, boolean string traps, localhost leaks and invalid ports.",
		RunE:  runValidate,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagEnvFile, "env", ".env", "env file to validate")
	cmd.Flags().StringVar(&flagTemplateFile, "template", ".env.example", "template listing required variables")
	cmd.Flags().BoolVar(&flagProduction, "production", false, "enable production checks (localhost detection)")
	cmd.Flags().IntVar(&flagMinSecretLen, "min-secret-length", 0, "minimum secret value length (default 50)")
	cmd.Flags().BoolVar(&flagExitZero, "exit-zero", false, "always exit 0, even with errors")
	cmd.Flags().BoolVar(&flagVAnnotations, "annotations", false, "emit GitHub Actions annotations")
	cmd.Flags().BoolVar(&flagVSarif, "sarif", false, "emit SARIF 2.1.0")
}

func runValidate(_ *cobra.Command, _ []string) error {
	local, global := loadConfigs()

	envPath := pickString(flagEnvFile, local.EnvFile, global.EnvFile)
	templatePath := pickString(flagTemplateFile, local.TemplateFile, global.TemplateFile)

	parserCfg := parserConfig(local, global)

	target, err := parseFile(envPath, parserCfg)
	if err != nil {
		return fmt.Errorf("parse %s: %w", envPath, err)
	}
	template, err := parseFile(templatePath, parserCfg)
	if err != nil {
		return fmt.Errorf("parse %s: %w", templatePath, err)
	}
	for _, w := range target.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	opts := rules.DefaultOptions()
	opts.TargetPath = envPath
	opts.TemplatePath = templatePath
	opts.Production = pickBool(flagProduction, local.Production, global.Production)
	if n := pickInt(flagMinSecretLen, local.MinSecretLength, global.MinSecretLength); n > 0 {
		opts.MinSecretLength = n
	}
	if th := pickFloat(0, local.EntropyThreshold, global.EntropyThreshold); th > 0 {
		opts.EntropyThreshold = th
	}

	issues := rules.Validate(target, template, opts)
	if pickBool(flagStrict, local.Strict, global.Strict) {
		issues = rules.Escalate(issues)
	}

	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, issues); err != nil {
			return err
		}
	case flagVSarif:
		if err := report.WriteIssueSARIF(os.Stdout, issues, version); err != nil {
			return err
		}
	case flagVAnnotations:
		report.WriteIssueAnnotations(os.Stdout, issues)
	default:
		noColor := flagNoColor || !stdoutIsTTY()
		report.PrintIssues(os.Stdout, issues, report.PrintOptions{NoColor: noColor})
	}

	if !flagExitZero && rules.Blocking(issues) {
		os.Exit(1)
	}
	return nil
}
