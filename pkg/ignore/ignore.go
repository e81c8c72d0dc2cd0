// Package ignore matches root-relative paths against gitignore-style patterns.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

const (
	// GitIgnoreFileName is read from the scan root when ignore files are enabled.
	GitIgnoreFileName = ".gitignore"
	// LocalIgnoreFileName holds patterns that only apply to this tool.
	LocalIgnoreFileName = ".encloseignore"
)

// Matcher is a compiled set of ignore patterns. A nil *Matcher matches nothing.
type Matcher struct {
	gi      *gitignore.GitIgnore
	sources []string
	lines   int
	logger  *zap.Logger
}

// New compiles the given pattern lines.
func New(logger *zap.Logger, lines ...string) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	m.compile(lines)
	return m
}

// LoadIgnoreFiles compiles the .gitignore and .encloseignore files found
// directly in root. Missing files are skipped; extra lines are appended last
// so they can override file patterns.
func LoadIgnoreFiles(root string, logger *zap.Logger, extra ...string) (*Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var lines []string
	var sources []string
	for _, name := range []string{GitIgnoreFileName, LocalIgnoreFileName} {
		path := filepath.Join(root, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
				continue
			}
			logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
			return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
		}
		fileLines := strings.Split(string(content), "\n")
		lines = append(lines, fileLines...)
		sources = append(sources, path)
		logger.Debug("Loaded ignore file", zap.String("filePath", path), zap.Int("lineCount", len(fileLines)))
	}

	m := &Matcher{logger: logger, sources: sources}
	m.compile(append(lines, extra...))
	return m, nil
}

func (m *Matcher) compile(lines []string) {
	m.gi = gitignore.CompileIgnoreLines(lines...)
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			m.lines++
		}
	}
	m.logger.Debug("Compiled ignore patterns", zap.Int("patternCount", m.lines))
}

// Sources lists the ignore files that were read.
func (m *Matcher) Sources() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.sources...)
}

// Len returns the number of pattern lines compiled.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return m.lines
}

// MatchesPath reports whether a root-relative file path is ignored.
func (m *Matcher) MatchesPath(rel string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(filepath.ToSlash(rel))
}

// MatchesDir reports whether a root-relative directory is ignored. Directory
// paths carry a trailing slash so "build/" style patterns apply.
func (m *Matcher) MatchesDir(rel string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return m.gi.MatchesPath(rel)
}
