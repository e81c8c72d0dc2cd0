package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enclose/pkg/collect"
	"enclose/pkg/ignore"
	"enclose/pkg/rules"
)

// filterFlags select which files are collected.
type filterFlags struct {
	extensions       []string
	excludeNames     []string
	pruneDirs        []string
	include          []string
	exclude          []string
	respectGitignore bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.extensions, "ext", nil, "additional file name suffixes to collect, e.g. --ext .py,.ts")
	fs.StringSliceVar(&f.excludeNames, "exclude-name", nil, "additional exact file names to skip, e.g. yarn.lock")
	fs.StringSliceVar(&f.pruneDirs, "prune-dir", nil, "additional directory names never to enter, e.g. vendor")
	fs.StringSliceVar(&f.include, "include", nil, "only collect relative paths matching these globs (** supported)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "skip relative paths matching these globs (** supported)")
	fs.BoolVar(&f.respectGitignore, "respect-gitignore", false, "also skip paths matched by .gitignore and .encloseignore in the root")
}

// resolve builds the rule set and collector options for root from the rules
// file (when given) and the flags. Flag lists extend what the file defines.
func (f *filterFlags) resolve(root, configPath string, logger *zap.Logger) (rules.Rules, []collect.Option, error) {
	var opts rules.Options
	var include, exclude []string
	respectGitignore := f.respectGitignore

	if configPath != "" {
		file, err := rules.Load(configPath)
		if err != nil {
			logger.Error("Failed to load rules file", zap.String("config", configPath), zap.Error(err))
			return rules.Rules{}, nil, err
		}
		opts = file.Options()
		include = file.Include
		exclude = file.Exclude
		respectGitignore = respectGitignore || file.RespectGitignore
		logger.Debug("Loaded rules file", zap.String("config", configPath))
	}

	opts.AppendExtensions = f.extensions
	opts.AppendExcludeNames = f.excludeNames
	opts.AppendPruneDirs = f.pruneDirs

	r := rules.New(opts)
	if err := r.Validate(); err != nil {
		return rules.Rules{}, nil, fmt.Errorf("invalid rules: %w", err)
	}

	collectOpts := []collect.Option{
		collect.WithLogger(logger),
		collect.WithInclude(append(include, f.include...)...),
		collect.WithExclude(append(exclude, f.exclude...)...),
	}
	if respectGitignore {
		m, err := ignore.LoadIgnoreFiles(root, logger)
		if err != nil {
			return rules.Rules{}, nil, fmt.Errorf("failed to load ignore patterns: %w", err)
		}
		logger.Debug("Loaded ignore patterns", zap.Strings("sources", m.Sources()), zap.Int("totalPatterns", m.Len()))
		collectOpts = append(collectOpts, collect.WithIgnore(m))
	}

	logger.Debug("Resolved rules",
		zap.Strings("extensions", r.Extensions()),
		zap.Strings("excludeNames", r.ExcludeNames()),
		zap.Strings("pruneDirs", r.PruneDirs()))
	return r, collectOpts, nil
}
