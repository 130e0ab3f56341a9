package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestBannerHasThreeLines(t *testing.T) {
	lines := strings.Split(Banner(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "breaktimer: "+Version {
		t.Errorf("Unexpected program line %q", lines[0])
	}
	if lines[1] != "Go: "+runtime.Version() {
		t.Errorf("Unexpected runtime line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Fyne: ") {
		t.Errorf("Unexpected toolkit line %q", lines[2])
	}
}

func TestModuleVersion(t *testing.T) {
	info := &debug.BuildInfo{Deps: []*debug.Module{
		{Path: "golang.org/x/image", Version: "v0.29.0"},
		{Path: fyneModule, Version: "v2.6.1"},
	}}
	if got := moduleVersion(info, fyneModule); got != "v2.6.1" {
		t.Errorf("Expected v2.6.1, got %q", got)
	}

	info.Deps[1].Replace = &debug.Module{Path: "../fyne", Version: "v2.6.2-dev"}
	if got := moduleVersion(info, fyneModule); got != "v2.6.2-dev" {
		t.Errorf("Expected replacement version, got %q", got)
	}

	if got := moduleVersion(&debug.BuildInfo{}, fyneModule); got != "unknown" {
		t.Errorf("Expected unknown, got %q", got)
	}
}
