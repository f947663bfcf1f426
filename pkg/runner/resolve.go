package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands the configured file entries into a concrete, deduplicated
// list. Literal entries keep their list position even when the file is
// missing (the run reports them as such); glob entries expand to their
// sorted matches in place.
func Resolve(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		if excluded(path, opts.Exclude) {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, entry := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolve cancelled: %w", err)
		}

		if !hasGlobMeta(entry) {
			add(filepath.ToSlash(filepath.Clean(entry)))
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(workDir), entry, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand pattern %q: %w", entry, err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}

	return files, nil
}

// hasGlobMeta reports whether an entry is a pattern rather than a literal path.
func hasGlobMeta(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}

// excluded reports whether path matches any exclude pattern.
func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// resolveWorkDir defaults the working directory to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}
