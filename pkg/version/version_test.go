package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()

	if v.Version != Version {
		t.Errorf("Version = %q, want %q", v.Version, Version)
	}
	if v.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", v.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; v.Platform != want {
		t.Errorf("Platform = %q, want %q", v.Platform, want)
	}
	if v.GitCommit == "" {
		t.Error("GitCommit should never be empty")
	}
}

func TestInfo_String(t *testing.T) {
	i := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2024-04-27T15:04:05Z",
		GoVersion: "go1.22.4",
		Platform:  "linux/amd64",
	}

	want := "enclose version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.22.4 on linux/amd64"
	if got := i.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Get().String(), "enclose version ") {
		t.Error("Get().String() should start with the program name")
	}
}
