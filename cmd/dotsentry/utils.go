package dotsentry

import (
	"os"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"golang.org/x/term"

	"github.com/dotsentry/dotsentry/internal/config"
	"github.com/dotsentry/dotsentry/internal/dotenv"
)

func selfUpdate() error {
	ver, err := semver.ParseTolerant(version)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "dotsentry/dotsentry")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// stdoutIsTTY gates color and table output when piping.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// parserConfig builds parser settings from defaults, file config and the
// global --strict flag.
func parserConfig(local, global config.FileConfig) dotenv.Config {
	cfg := dotenv.DefaultConfig()
	cfg.Strict = pickBool(flagStrict, local.Strict, global.Strict)
	if local.Expansion != nil {
		cfg.AllowExpansion = *local.Expansion
	} else if global.Expansion != nil {
		cfg.AllowExpansion = *global.Expansion
	}
	if local.InlineComments != nil {
		cfg.AllowInlineComments = *local.InlineComments
	} else if global.InlineComments != nil {
		cfg.AllowInlineComments = *global.InlineComments
	}
	if n := pickInt(0, local.ExpansionDepth, global.ExpansionDepth); n > 0 {
		cfg.MaxExpansionDepth = n
	}
	return cfg
}

func parseFile(path string, cfg dotenv.Config) (*dotenv.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dotenv.Parse(string(b), cfg)
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
