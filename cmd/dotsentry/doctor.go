package dotsentry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"
)

var flagDoctorPath string

func init() {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment file setup issues",
		Long:  "Checks that .env exists with safe permissions, is git-ignored and not committed, and that .env.example is tracked for your team.",
		RunE:  runDoctor,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagDoctorPath, "path", "p", ".", "project root to diagnose")
}

type doctorReport struct {
	issues   int
	warnings int
}

func (r *doctorReport) ok(msg string)   { fmt.Printf("  + %s\n", msg) }
func (r *doctorReport) info(msg string) { fmt.Printf("  . %s\n", msg) }
func (r *doctorReport) warn(msg string) {
	fmt.Printf("  ! %s\n", msg)
	r.warnings++
}
func (r *doctorReport) fail(msg string) {
	fmt.Printf("  x %s\n", msg)
	r.issues++
}

func runDoctor(_ *cobra.Command, _ []string) error {
	root := flagDoctorPath
	rep := &doctorReport{}

	fmt.Println("Checking .env file...")
	envPath := filepath.Join(root, ".env")
	if info, err := os.Stat(envPath); err == nil {
		rep.ok(".env exists")
		if mode := info.Mode().Perm(); mode&0o044 != 0 {
			rep.warn(fmt.Sprintf(".env has mode %04o, consider chmod 600", mode))
		} else {
			rep.ok(".env has restrictive permissions")
		}
		checkGitignore(root, rep)
	} else {
		rep.fail(".env does not exist")
	}

	fmt.Println("\nChecking .env.example...")
	examplePath := filepath.Join(root, ".env.example")
	if _, err := os.Stat(examplePath); err == nil {
		rep.ok(".env.example exists")
	} else {
		rep.warn(".env.example does not exist, teammates have no template to copy")
	}

	fmt.Println("\nChecking git...")
	checkGit(root, rep)

	fmt.Println("\nChecking project structure...")
	checkProject(root, rep)

	fmt.Println("\nSummary:")
	if rep.issues == 0 && rep.warnings == 0 {
		fmt.Println("  + no issues found")
	} else {
		if rep.issues > 0 {
			fmt.Printf("  x %d critical issues\n", rep.issues)
		}
		if rep.warnings > 0 {
			fmt.Printf("  ! %d warnings\n", rep.warnings)
		}
	}

	if rep.issues > 0 {
		os.Exit(1)
	}
	return nil
}

func checkGitignore(root string, rep *doctorReport) {
	b, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		rep.warn("no .gitignore found")
		return
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == ".env" || line == "/.env" || line == ".env*" || line == "*.env" {
			rep.ok(".env is listed in .gitignore")
			return
		}
	}
	rep.fail(".env is NOT listed in .gitignore")
}

// checkGit inspects the repository with go-git: a .env blob in HEAD means the
// secrets are already committed, while .env.example should be tracked.
func checkGit(root string, rep *doctorReport) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		rep.info("not a git repository, skipping git checks")
		return
	}

	head, err := repo.Head()
	if err != nil {
		rep.info("repository has no commits yet")
		return
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return
	}
	tree, err := commit.Tree()
	if err != nil {
		return
	}

	if _, err := tree.File(".env"); err == nil {
		rep.fail(".env is committed to git, rotate its secrets and remove it from history")
	} else {
		rep.ok(".env is not committed")
	}
	if _, err := tree.File(".env.example"); err == nil {
		rep.ok(".env.example is tracked in git")
	} else if _, statErr := os.Stat(filepath.Join(root, ".env.example")); statErr == nil {
		rep.warn(".env.example exists but is not tracked in git")
	}
}

func checkProject(root string, rep *doctorReport) {
	switch {
	case exists(root, "go.mod"):
		rep.ok("detected Go project (go.mod)")
	case exists(root, "package.json"):
		rep.ok("detected Node.js project (package.json)")
	case exists(root, "requirements.txt"), exists(root, "pyproject.toml"):
		rep.ok("detected Python project")
	case exists(root, "Cargo.toml"):
		rep.ok("detected Rust project (Cargo.toml)")
	}
	if exists(root, "docker-compose.yml") || exists(root, "docker-compose.yaml") || exists(root, "Dockerfile") {
		rep.info("Docker files detected, run validate with --production")
	}
}

func exists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}
