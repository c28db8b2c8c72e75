package dotsentry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ci)

	var provider string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		RunE: func(_ *cobra.Command, _ []string) error {
			var path string
			var content string
			switch provider {
			case "github":
				path = filepath.Join(".github", "workflows", "dotsentry.yml")
				content = `name: dotsentry
on: [push, pull_request]
jobs:
  env-check:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: stable
      - run: go install github.com/dotsentry/dotsentry@latest
      - run: dotsentry validate --template .env.example --annotations --exit-zero
      - run: dotsentry scan --annotations --fail-on high
`
			case "gitlab":
				path = ".gitlab-ci.yml"
				content = `stages: [env-check]
env-check:
  stage: env-check
  image: golang:1.25
  script:
    - go install github.com/dotsentry/dotsentry@latest
    - dotsentry validate --template .env.example --exit-zero
    - dotsentry scan --json --fail-on high | tee dotsentry-findings.json
  artifacts:
    when: always
    paths:
      - dotsentry-findings.json
`
			case "bitbucket":
				path = "bitbucket-pipelines.yml"
				content = `pipelines:
  default:
    - step:
        name: dotsentry env check
        image: golang:1.25
        caches:
          - go
        script:
          - go install github.com/dotsentry/dotsentry@latest
          - dotsentry validate --template .env.example --exit-zero
          - dotsentry scan --json --fail-on high | tee dotsentry-findings.json
        artifacts:
          - dotsentry-findings.json
`
			case "azure":
				path = "azure-pipelines.yml"
				content = `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go install github.com/dotsentry/dotsentry@latest
    dotsentry validate --template .env.example --exit-zero
    dotsentry scan --json --fail-on high | tee dotsentry-findings.json
  displayName: 'dotsentry env check'
- publish: dotsentry-findings.json
  artifact: dotsentry-findings
  condition: succeededOrFailed()
`
			default:
				return fmt.Errorf("unknown --provider. Supported: github, gitlab, bitbucket, azure")
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, remove it first", path)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Println("Wrote", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "github", "CI provider: github | gitlab | bitbucket | azure")
	ci.AddCommand(initCmd)
}
