package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version || info.GitCommit != GitCommit || info.BuildDate != BuildDate {
		t.Errorf("Get() = %+v does not reflect the package variables", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q; want %q", info.GoVersion, runtime.Version())
	}
	if !info.IsRelease() {
		t.Errorf("default version %q should be a semantic version", info.Version)
	}
}

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.2.3", true},
		{"v1.2.3", true},
		{"1.2.3-rc.1", true},
		{"dev", false},
		{"1.2", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := (Info{Version: tt.version}).IsRelease(); got != tt.want {
			t.Errorf("IsRelease(%q) = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "0123456789abcdef", BuildDate: "2025-08-14", GoVersion: "go1.23.0"}

	if got := info.Short(); got != "0123456" {
		t.Errorf("Short() = %q; want 0123456", got)
	}
	s := info.String()
	for _, want := range []string{"1.0.0", "commit 0123456", "built 2025-08-14", "go1.23.0"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q; missing %q", s, want)
		}
	}
	if got := (Info{GitCommit: "abc"}).Short(); got != "abc" {
		t.Errorf("Short() of short commit = %q", got)
	}
}
