package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestMatcher_NilMatchesNothing(t *testing.T) {
	var m *Matcher

	if m.MatchesPath("anything.go") {
		t.Error("nil matcher matched a file")
	}
	if m.MatchesDir("build") {
		t.Error("nil matcher matched a directory")
	}
	if m.Len() != 0 || m.Sources() != nil {
		t.Error("nil matcher should report no patterns and no sources")
	}
}

func TestNew_Patterns(t *testing.T) {
	m := New(zaptest.NewLogger(t), "*.log", "build/", "!keep.log", "# comment", "")

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	files := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"nested/dir/trace.log", true},
		{"keep.log", false},
		{"main.go", false},
		{"build/out.js", true},
	}
	for _, tt := range files {
		t.Run(tt.path, func(t *testing.T) {
			if got := m.MatchesPath(tt.path); got != tt.want {
				t.Errorf("MatchesPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	if !m.MatchesDir("build") {
		t.Error("MatchesDir(build) = false, want true")
	}
	if m.MatchesDir("src") {
		t.Error("MatchesDir(src) = true, want false")
	}
}

func TestLoadIgnoreFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, GitIgnoreFileName), []byte("dist/\n*.gen.go\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, LocalIgnoreFileName), []byte("docs/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadIgnoreFiles(root, zaptest.NewLogger(t), "!api.gen.go")
	if err != nil {
		t.Fatalf("LoadIgnoreFiles() error = %v", err)
	}

	if got := len(m.Sources()); got != 2 {
		t.Errorf("len(Sources()) = %d, want 2", got)
	}
	if !m.MatchesDir("dist") || !m.MatchesDir("docs") {
		t.Error("directories from both ignore files should match")
	}
	if !m.MatchesPath("pkg/model.gen.go") {
		t.Error("pkg/model.gen.go should be ignored")
	}
	if m.MatchesPath("api.gen.go") {
		t.Error("extra negation should re-include api.gen.go")
	}
}

func TestLoadIgnoreFiles_NoFiles(t *testing.T) {
	m, err := LoadIgnoreFiles(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadIgnoreFiles() error = %v", err)
	}
	if m.Len() != 0 || len(m.Sources()) != 0 {
		t.Errorf("expected an empty matcher, got %d patterns from %v", m.Len(), m.Sources())
	}
	if m.MatchesPath("main.go") {
		t.Error("empty matcher matched a file")
	}
}
