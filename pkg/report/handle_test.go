// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"runtime/debug"
	"testing"
)

// fakeBuildInfo installs a synthetic module graph behind the readBuildInfo
// seam and restores the real implementation on cleanup.
func fakeBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func testBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/acme/reporter", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
			{Path: "gonum.org/v1/gonum", Version: "v0.15.1"},
			{
				Path:    "golang.org/x/exp",
				Version: "v0.0.0-20240101000000-aaaaaaaaaaaa",
				Replace: &debug.Module{Path: "golang.org/x/exp", Version: "v0.0.0-20251219000000-bbbbbbbbbbbb"},
			},
		},
	}
}

func TestBuildInfoImporter_Import(t *testing.T) {
	// Not parallel: subtests mutate the package-level readBuildInfo seam.

	tests := []struct {
		name        string
		identifier  string
		wantVersion string
	}{
		{
			name:        "exact module path",
			identifier:  "github.com/spf13/cobra",
			wantVersion: "v1.10.2",
		},
		{
			name:        "trailing path element",
			identifier:  "cobra",
			wantVersion: "v1.10.2",
		},
		{
			name:        "main module",
			identifier:  "example.com/acme/reporter",
			wantVersion: "(devel)",
		},
		{
			name:        "replaced module reports replacement version",
			identifier:  "golang.org/x/exp",
			wantVersion: "v0.0.0-20251219000000-bbbbbbbbbbbb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeBuildInfo(t, testBuildInfo(), true)

			h, err := BuildInfoImporter{}.Import(tt.identifier)
			if err != nil {
				t.Fatalf("Import(%q) returned error: %v", tt.identifier, err)
			}
			if h.Name() != tt.identifier {
				t.Errorf("Name() = %q, want %q", h.Name(), tt.identifier)
			}
			got, ok := h.Attribute(VersionAttr)
			if !ok {
				t.Fatalf("Attribute(%q) reported absent", VersionAttr)
			}
			if got != tt.wantVersion {
				t.Errorf("version = %q, want %q", got, tt.wantVersion)
			}
		})
	}
}

func TestBuildInfoImporter_ImportNotFound(t *testing.T) {
	fakeBuildInfo(t, testBuildInfo(), true)

	_, err := BuildInfoImporter{}.Import("definitely_not_a_real_package_xyz")
	if !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("Import() error = %v, want ErrComponentNotFound", err)
	}
}

func TestBuildInfoImporter_ImportNoBuildInfo(t *testing.T) {
	fakeBuildInfo(t, nil, false)

	_, err := BuildInfoImporter{}.Import("cobra")
	if !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("Import() error = %v, want ErrComponentNotFound", err)
	}
}

func TestBuildInfoImporter_Modules(t *testing.T) {
	fakeBuildInfo(t, testBuildInfo(), true)

	handles := BuildInfoImporter{}.Modules()
	if len(handles) != 3 {
		t.Fatalf("Modules() returned %d handles, want 3", len(handles))
	}
	if handles[0].Name() != "github.com/spf13/cobra" {
		t.Errorf("first handle = %q, want build-info order preserved", handles[0].Name())
	}
	if v, _ := handles[2].Attribute(VersionAttr); v != "v0.0.0-20251219000000-bbbbbbbbbbbb" {
		t.Errorf("replaced module version = %q, want replacement version", v)
	}
}

func TestStaticHandle(t *testing.T) {
	h := NewStaticHandle("mkl", map[string]string{"version_string": "2026.0.1"})

	if h.Name() != "mkl" {
		t.Errorf("Name() = %q, want %q", h.Name(), "mkl")
	}
	if v, ok := h.Attribute("version_string"); !ok || v != "2026.0.1" {
		t.Errorf("Attribute(version_string) = %q, %v", v, ok)
	}
	if _, ok := h.Attribute(VersionAttr); ok {
		t.Error("Attribute(version) reported present for an absent attribute")
	}
}
