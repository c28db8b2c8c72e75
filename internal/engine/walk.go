package engine

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Walk traverses the working tree under cfg.Root and returns the relative
// paths of files eligible for scanning. Size and binary checks happen later,
// when workers actually read the files.
func Walk(ctx context.Context, cfg Config) ([]string, error) {
	var out []string
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && p != cfg.Root && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	return out, err
}

func allowedByGlobs(rel string, cfg Config) bool {
	rel = filepath.ToSlash(rel)
	if cfg.Exclude != "" {
		if ok, _ := doublestar.Match(cfg.Exclude, rel); ok {
			return false
		}
	}
	if cfg.Include != "" {
		ok, _ := doublestar.Match(cfg.Include, rel)
		return ok
	}
	return true
}
