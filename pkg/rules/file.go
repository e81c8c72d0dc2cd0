package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a rule set.
type File struct {
	Extensions       []string `yaml:"extensions"`
	ExcludeNames     []string `yaml:"exclude_names"`
	PruneDirs        []string `yaml:"prune_dirs"`
	HiddenPrefix     *string  `yaml:"hidden_prefix"`
	Include          []string `yaml:"include"`
	Exclude          []string `yaml:"exclude"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
}

// Load reads a YAML rules file. Unknown keys are rejected.
func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return f, nil
}

// Options converts the file into rule options. Lists absent from the file keep
// their defaults.
func (f File) Options() Options {
	return Options{
		Extensions:   f.Extensions,
		ExcludeNames: f.ExcludeNames,
		PruneDirs:    f.PruneDirs,
		HiddenPrefix: f.HiddenPrefix,
	}
}
