package rules

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault_IncludesFile(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{"index.js", true},
		{"App.tsx", true},
		{"config.yaml", true},
		{"README.md", true},
		{"package-lock.json", false},
		{"jd2cv.json", false},
		{"package.json", true},
		{"notes.txt", false},
		{"image.png", false},
		{"Main.GO", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IncludesFile(tt.name); got != tt.want {
				t.Errorf("IncludesFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDefault_PrunesDir(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".venv", true},
		{"node_modules", true},
		{"__pycache__", true},
		{"venv", true},
		{"env", true},
		{"src", false},
		{"environment", false},
		{"my_node_modules", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.PrunesDir(tt.name); got != tt.want {
				t.Errorf("PrunesDir(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNew_SuffixMatchIsLiteral(t *testing.T) {
	r := New(Options{Extensions: []string{"file.txt"}})

	if !r.IncludesFile("my-file.txt") {
		t.Error("suffix match should include my-file.txt")
	}
	if r.IncludesFile("file.TXT") {
		t.Error("suffix match should be case-sensitive")
	}
}

func TestNew_ExcludedNameWinsOverExtension(t *testing.T) {
	r := New(Options{
		Extensions:   []string{".lock", ".json"},
		ExcludeNames: []string{"yarn.lock"},
	})

	if r.IncludesFile("yarn.lock") {
		t.Error("yarn.lock should be excluded")
	}
	if !r.IncludesFile("other.lock") {
		t.Error("other.lock should be included")
	}
	if !r.IncludesFile("package-lock.json") {
		t.Error("package-lock.json should be included once the default exclusions are replaced")
	}
}

func TestNew_AppendExtendsDefaults(t *testing.T) {
	r := New(Options{
		AppendExtensions:   []string{".py", ".ts"},
		AppendExcludeNames: []string{"yarn.lock"},
		AppendPruneDirs:    []string{"vendor"},
	})

	for _, name := range []string{"main.py", "app.ts", "main.go"} {
		if !r.IncludesFile(name) {
			t.Errorf("IncludesFile(%q) = false, want true", name)
		}
	}
	for _, dir := range []string{"vendor", "node_modules"} {
		if !r.PrunesDir(dir) {
			t.Errorf("PrunesDir(%q) = false, want true", dir)
		}
	}
	if r.IncludesFile("package-lock.json") {
		t.Error("default exclusions should survive appending")
	}
}

func TestNew_HiddenPrefixOverride(t *testing.T) {
	empty := ""
	r := New(Options{HiddenPrefix: &empty})

	if r.PrunesDir(".github") {
		t.Error("empty hidden prefix should not prune dot directories")
	}
	if !r.PrunesDir("node_modules") {
		t.Error("named directories should still be pruned")
	}
}

func TestRules_AccessorsReturnCopies(t *testing.T) {
	r := New(Options{Extensions: []string{".b", ".a", ".a"}})

	exts := r.Extensions()
	if want := []string{".a", ".b"}; !reflect.DeepEqual(exts, want) {
		t.Fatalf("Extensions() = %v, want %v", exts, want)
	}

	exts[0] = ".zzz"
	if r.IncludesFile("x.zzz") {
		t.Error("mutating the returned slice changed the rule set")
	}
}

func TestRules_Validate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}

	r := New(Options{Extensions: []string{}})
	if err := r.Validate(); !errors.Is(err, ErrNoExtensions) {
		t.Errorf("Validate() = %v, want ErrNoExtensions", err)
	}

	var zero Rules
	if zero.IncludesFile("main.go") {
		t.Error("zero Rules should include nothing")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `extensions: [".go", ".py"]
exclude_names: ["go.sum"]
hidden_prefix: "_"
include: ["src/**"]
exclude: ["**/*_test.go"]
respect_gitignore: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !f.RespectGitignore {
		t.Error("RespectGitignore = false, want true")
	}
	if want := []string{"src/**"}; !reflect.DeepEqual(f.Include, want) {
		t.Errorf("Include = %v, want %v", f.Include, want)
	}
	if want := []string{"**/*_test.go"}; !reflect.DeepEqual(f.Exclude, want) {
		t.Errorf("Exclude = %v, want %v", f.Exclude, want)
	}

	r := New(f.Options())
	if !r.IncludesFile("main.py") || r.IncludesFile("index.js") {
		t.Error("extensions from the file should replace the defaults")
	}
	if r.IncludesFile("go.sum") {
		t.Error("go.sum should be excluded")
	}
	if !r.PrunesDir("node_modules") {
		t.Error("prune_dirs absent from the file should keep the defaults")
	}
	if !r.PrunesDir("_build") || r.PrunesDir(".git") {
		t.Error("hidden_prefix from the file should replace the default")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		os.WriteFile(path, []byte("extension: [\".go\"]\n"), 0o644)
		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil, want unknown field error")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		os.WriteFile(path, nil, 0o644)
		f, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if err := New(f.Options()).Validate(); err != nil {
			t.Errorf("empty file should keep defaults, Validate() = %v", err)
		}
	})
}
