// Package collect walks a directory tree and returns the files a rule set
// selects, ordered by their root-relative path.
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"enclose/pkg/ignore"
	"enclose/pkg/rules"
)

// FileEntry is a collected file.
type FileEntry struct {
	Path string // Absolute path on disk.
	Rel  string // Path relative to the scan root, slash-separated. Sort key and display name.
}

type options struct {
	include []string
	exclude []string
	ignore  *ignore.Matcher
	skip    map[string]struct{}
	logger  *zap.Logger
}

// Option tunes a Collect call.
type Option func(*options)

// WithInclude keeps only files whose relative path matches at least one of
// the doublestar patterns.
func WithInclude(patterns ...string) Option {
	return func(o *options) { o.include = append(o.include, patterns...) }
}

// WithExclude drops files whose relative path matches any of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, patterns...) }
}

// WithIgnore prunes directories and skips files matched by m.
func WithIgnore(m *ignore.Matcher) Option {
	return func(o *options) { o.ignore = m }
}

// WithSkip never returns the given paths. Relative paths are made absolute first.
func WithSkip(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				o.skip[abs] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger used during the walk.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Collect walks root and returns every file selected by r, sorted ascending by
// Rel using byte-wise string comparison. Pruned directories are never entered.
// An empty result is not an error. A root that cannot be stat'ed or is not a
// directory is an error; failures below the root are logged and skipped.
func Collect(root string, r rules.Rules, opts ...Option) ([]FileEntry, error) {
	o := &options{skip: map[string]struct{}{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger

	for _, p := range append(append([]string(nil), o.include...), o.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		logger.Error("Root does not exist or cannot be accessed", zap.String("root", absRoot), zap.Error(err))
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		logger.Error("Root is not a directory", zap.String("root", absRoot))
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	// WalkDir does not follow a symlinked root; walk its target and report
	// paths under the root the caller gave.
	walkRoot := absRoot
	if linfo, err := os.Lstat(absRoot); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
			walkRoot = resolved
		}
	}

	logger.Debug("Starting file collection", zap.String("root", absRoot))

	var entries []FileEntry
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if path == walkRoot {
			return nil
		}

		rel, relErr := filepath.Rel(walkRoot, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if r.PrunesDir(d.Name()) {
				logger.Debug("Pruning directory", zap.String("directory", rel))
				return filepath.SkipDir
			}
			if o.ignore.MatchesDir(rel) {
				logger.Debug("Skipping ignored directory", zap.String("directory", rel))
				return filepath.SkipDir
			}
			return nil
		}

		t := d.Type()
		if !t.IsRegular() && t&fs.ModeSymlink == 0 {
			logger.Debug("Skipping non-regular file", zap.String("filePath", rel), zap.Stringer("mode", t))
			return nil
		}
		// Directory links are neither followed nor listed. Dangling links stay files.
		if t&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				logger.Debug("Skipping symlinked directory", zap.String("directory", rel))
				return nil
			}
		}
		if !o.selects(r, d.Name(), rel) {
			return nil
		}
		abs := filepath.Join(absRoot, filepath.FromSlash(rel))
		if _, skipped := o.skip[abs]; skipped {
			logger.Debug("Skipping excluded path", zap.String("filePath", abs))
			return nil
		}

		entries = append(entries, FileEntry{Path: abs, Rel: rel})
		logger.Debug("Added file to processing list", zap.String("filePath", rel))
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return entries, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rel < entries[j].Rel
	})

	logger.Debug("Completed file collection", zap.Int("files", len(entries)))
	return entries, nil
}

func (o *options) selects(r rules.Rules, name, rel string) bool {
	if !r.IncludesFile(name) {
		return false
	}
	if o.ignore.MatchesPath(rel) {
		return false
	}
	if len(o.include) > 0 && !matchAny(o.include, rel) {
		return false
	}
	return !matchAny(o.exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Rels returns the relative paths of entries in order.
func Rels(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Rel
	}
	return out
}
