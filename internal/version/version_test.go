package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo_DefaultValues(t *testing.T) {
	info := Info()

	if info["version"] != "dev" {
		t.Errorf("version = %v, want dev", info["version"])
	}
	if info["go_version"] != runtime.Version() {
		t.Errorf("go_version = %v, want %v", info["go_version"], runtime.Version())
	}
}

func TestString_ContainsBuildInfo(t *testing.T) {
	s := String()
	for _, part := range []string{Version, GitCommit, BuildDate} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}
