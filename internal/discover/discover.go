// Package discover finds source files to analyze under a directory.
package discover

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// FileEntry is a discovered source file.
type FileEntry struct {
	Path string // Relative to the root
	Size int64
}

var skipDirs = map[string]struct{}{
	"node_modules":  {},
	"vendor":        {},
	"__pycache__":   {},
	"venv":          {},
	"build":         {},
	"dist":          {},
	"target":        {},
	"egg-info":      {},
	".git":          {},
	".hg":           {},
	".svn":          {},
	".tox":          {},
	".mypy_cache":   {},
	".pytest_cache": {},
}

// ErrNotDirectory is returned when root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Files walks root and returns files whose extension is in exts (all files
// when exts is empty), skipping hidden entries, dependency and build
// directories, symlinks, and anything matched by root's .gitignore. Paths are
// sorted.
func Files(root string, exts []string) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "discover", Path: root, Err: ErrNotDirectory}
	}

	extSet := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(e)] = struct{}{}
	}
	gi := loadGitignore(root)

	var results []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped
		}
		if path == root {
			return nil
		}

		name := d.Name()
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if len(extSet) > 0 {
			if _, ok := extSet[strings.ToLower(filepath.Ext(name))]; !ok {
				return nil
			}
		}

		fi, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		results = append(results, FileEntry{Path: rel, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
