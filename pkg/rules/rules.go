// Package rules defines which files the collector picks up and which
// directories it never descends into.
package rules

import (
	"errors"
	"sort"
	"strings"
)

// DefaultHiddenPrefix marks directories that are pruned from traversal.
const DefaultHiddenPrefix = "."

var (
	defaultExtensions = []string{
		".js", ".java", ".cpp", ".c", ".cs", ".php", ".rb", ".go",
		".rs", ".kt", ".swift", ".m", ".h", ".hpp", ".scala", ".r", ".pl",
		".sh", ".bat", ".ps1", ".html", ".css", ".scss", ".sass", ".less",
		".xml", ".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf",
		".sql", ".md", ".tsx", ".jsx", ".vue", ".dart", ".lua", ".perl",
		".asm", ".vb", ".fs", ".ml", ".clj", ".ex", ".exs", ".elm", ".hs",
	}
	defaultExcludeNames = []string{"package-lock.json", "jd2cv.json"}
	defaultPruneDirs    = []string{"node_modules", "__pycache__", "venv", "env"}
)

// ErrNoExtensions is returned by Validate when no extension is recognized.
var ErrNoExtensions = errors.New("no file extensions configured")

// Options describes a rule set before it is frozen into Rules.
// A nil slice means "use the default"; a non-nil empty slice means "none".
type Options struct {
	Extensions   []string // Replaces the default extension set when non-nil.
	ExcludeNames []string // Replaces the default excluded names when non-nil.
	PruneDirs    []string // Replaces the default pruned directory names when non-nil.
	HiddenPrefix *string  // Replaces DefaultHiddenPrefix when non-nil. Empty disables the check.

	AppendExtensions   []string // Added on top of the resolved extension set.
	AppendExcludeNames []string // Added on top of the resolved excluded names.
	AppendPruneDirs    []string // Added on top of the resolved pruned directories.
}

// Rules is an immutable rule set. The zero value recognizes nothing.
type Rules struct {
	extensions   []string
	excludeNames map[string]struct{}
	pruneDirs    map[string]struct{}
	hiddenPrefix string
}

// Default returns the built-in rule set.
func Default() Rules {
	return New(Options{})
}

// New freezes opts into a Rules value. Inputs are copied.
func New(opts Options) Rules {
	exts := pick(opts.Extensions, defaultExtensions)
	names := pick(opts.ExcludeNames, defaultExcludeNames)
	dirs := pick(opts.PruneDirs, defaultPruneDirs)

	hidden := DefaultHiddenPrefix
	if opts.HiddenPrefix != nil {
		hidden = *opts.HiddenPrefix
	}

	return Rules{
		extensions:   uniqueSorted(append(exts, opts.AppendExtensions...)),
		excludeNames: toSet(append(names, opts.AppendExcludeNames...)),
		pruneDirs:    toSet(append(dirs, opts.AppendPruneDirs...)),
		hiddenPrefix: hidden,
	}
}

// Validate reports whether the rule set can match anything at all.
func (r Rules) Validate() error {
	if len(r.extensions) == 0 {
		return ErrNoExtensions
	}
	return nil
}

// IncludesFile reports whether a file with the given base name is collected.
// Excluded names win over extensions; extensions are literal, case-sensitive suffixes.
func (r Rules) IncludesFile(name string) bool {
	if _, excluded := r.excludeNames[name]; excluded {
		return false
	}
	for _, ext := range r.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// PrunesDir reports whether a directory with the given base name is skipped
// together with everything below it.
func (r Rules) PrunesDir(name string) bool {
	if r.hiddenPrefix != "" && strings.HasPrefix(name, r.hiddenPrefix) {
		return true
	}
	_, pruned := r.pruneDirs[name]
	return pruned
}

// Extensions returns the recognized extensions in sorted order.
func (r Rules) Extensions() []string {
	return append([]string(nil), r.extensions...)
}

// ExcludeNames returns the excluded file names in sorted order.
func (r Rules) ExcludeNames() []string {
	return sortedKeys(r.excludeNames)
}

// PruneDirs returns the pruned directory names in sorted order.
func (r Rules) PruneDirs() []string {
	return sortedKeys(r.pruneDirs)
}

// HiddenPrefix returns the prefix that marks hidden directories.
func (r Rules) HiddenPrefix() string {
	return r.hiddenPrefix
}

func pick(override, fallback []string) []string {
	if override != nil {
		return append([]string(nil), override...)
	}
	return append([]string(nil), fallback...)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = struct{}{}
		}
	}
	return set
}

func uniqueSorted(items []string) []string {
	return sortedKeys(toSet(items))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
