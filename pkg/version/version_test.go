package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
	if info.Platform == "" {
		t.Error("Platform should not be empty")
	}

	expectedPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if info.Platform != expectedPlatform {
		t.Errorf("Expected platform %s, got %s", expectedPlatform, info.Platform)
	}
}

func TestString(t *testing.T) {
	origVersion, origCommit, origBranch, origDate := Version, GitCommit, GitBranch, BuildDate
	defer func() { Version, GitCommit, GitBranch, BuildDate = origVersion, origCommit, origBranch, origDate }()

	Version, GitCommit, GitBranch, BuildDate = "1.0.0", "", "", ""
	str := String()
	if !strings.Contains(str, "1.0.0") {
		t.Errorf("String should contain version 1.0.0, got: %s", str)
	}

	Version, GitCommit, GitBranch, BuildDate = "1.0.0", "abcdef1234567890", "main", "2026-01-11"
	str = String()
	if !strings.Contains(str, "1.0.0") || !strings.Contains(str, "abcdef1") || !strings.Contains(str, "main") {
		t.Errorf("String should contain version, commit prefix and branch, got: %s", str)
	}
}

func TestShort(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "1.0.0", ""
	if got := Short(); got != "1.0.0" {
		t.Errorf("Expected short version '1.0.0', got '%s'", got)
	}

	Version, GitCommit = "1.0.0", "abcdef1234567890"
	if got, want := Short(), "1.0.0-abcdef1"; got != want {
		t.Errorf("Expected short version '%s', got '%s'", want, got)
	}
}

func TestUserAgent(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "1.0.0", ""
	if got, want := UserAgent(), "nolik-cli/1.0.0"; got != want {
		t.Errorf("Expected UserAgent '%s', got '%s'", want, got)
	}

	GitCommit = "abcdef1234567890"
	if got, want := UserAgent(), "nolik-cli/1.0.0-abcdef1"; got != want {
		t.Errorf("Expected UserAgent '%s', got '%s'", want, got)
	}
}

func TestPrintVersion(t *testing.T) {
	PrintVersion()
}

func TestPrintVersionJSON(t *testing.T) {
	PrintVersionJSON()
}

func TestVersionConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version constant should be set")
	}
	if GoVersion == "" {
		t.Error("GoVersion should be set by runtime.Version()")
	}
	if !strings.HasPrefix(GoVersion, "go") {
		t.Errorf("GoVersion should start with 'go', got: %s", GoVersion)
	}
}

func TestInfoStruct(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc123",
		GitBranch: "main",
		BuildDate: "2026-01-11",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	if info.Version != "1.0.0" || info.GitCommit != "abc123" || info.GitBranch != "main" ||
		info.BuildDate != "2026-01-11" || info.GoVersion != "go1.24.0" || info.Platform != "linux/amd64" {
		t.Errorf("unexpected Info struct contents: %+v", info)
	}
}
