// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	// VersionAttr is the conventional attribute every well-behaved
	// component is expected to expose its version under.
	VersionAttr = "version"
)

var (
	// ErrComponentNotFound is returned by an Importer when an identifier
	// cannot be resolved to a loaded component. Callers branch on this
	// instead of receiving a stand-in handle.
	ErrComponentNotFound = errors.New("component not found")

	// readBuildInfo is a test seam for debug.ReadBuildInfo. Production code
	// uses the real implementation; tests replace it to simulate different
	// build info scenarios.
	//
	//nolint:gochecknoglobals // Test seam requires a package-level variable.
	readBuildInfo = debug.ReadBuildInfo
)

type (
	// Handle is an opaque reference to a loaded component. Name reports the
	// component's own identity; Attribute performs a named lookup on the
	// component, returning false when the attribute is not exposed.
	Handle interface {
		Name() string
		Attribute(name string) (string, bool)
	}

	// Importer resolves a string identifier to a loaded component. A failed
	// resolution returns an error wrapping ErrComponentNotFound; no stub
	// handle is ever constructed.
	Importer interface {
		Import(identifier string) (Handle, error)
	}

	// StaticHandle is a Handle backed by a fixed attribute map. It is the
	// adapter for components that live outside the binary's module graph
	// (cgo-wrapped native libraries, embedded interpreters) and for tests.
	StaticHandle struct {
		name  string
		attrs map[string]string
	}

	// moduleHandle adapts a module from the binary's build information.
	// Its only attribute is the conventional version attribute.
	moduleHandle struct {
		name    string
		version string
	}

	// BuildInfoImporter resolves identifiers against the module graph of
	// the running binary via debug.ReadBuildInfo. An identifier matches a
	// module by full path or by trailing path element, so both
	// "github.com/spf13/cobra" and "cobra" resolve the same module.
	BuildInfoImporter struct{}
)

// NewStaticHandle returns a StaticHandle with the given identity name and
// attribute map. The map is copied; nil is treated as empty.
func NewStaticHandle(name string, attrs map[string]string) *StaticHandle {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return &StaticHandle{name: name, attrs: copied}
}

// Name reports the handle's identity name.
func (h *StaticHandle) Name() string { return h.name }

// Attribute looks up a named attribute on the handle.
func (h *StaticHandle) Attribute(name string) (string, bool) {
	v, ok := h.attrs[name]
	return v, ok
}

func (m moduleHandle) Name() string { return m.name }

func (m moduleHandle) Attribute(name string) (string, bool) {
	if name == VersionAttr && m.version != "" {
		return m.version, true
	}
	return "", false
}

// Import resolves an identifier to a module compiled into the running
// binary. The main module matches too, so a binary can report itself.
func (BuildInfoImporter) Import(identifier string) (Handle, error) {
	info, ok := readBuildInfo()
	if !ok {
		return nil, fmt.Errorf("import %q: no build info in binary: %w", identifier, ErrComponentNotFound)
	}

	if moduleMatches(info.Main.Path, identifier) {
		return moduleHandle{name: identifier, version: info.Main.Version}, nil
	}

	for _, dep := range info.Deps {
		if !moduleMatches(dep.Path, identifier) {
			continue
		}
		version := dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Version
		}
		return moduleHandle{name: identifier, version: version}, nil
	}

	return nil, fmt.Errorf("import %q: %w", identifier, ErrComponentNotFound)
}

// Modules returns a handle for every dependency module of the running
// binary, in build-info order. It returns nil when the binary carries no
// build information (e.g. built without module support).
func (BuildInfoImporter) Modules() []Handle {
	info, ok := readBuildInfo()
	if !ok {
		return nil
	}
	handles := make([]Handle, 0, len(info.Deps))
	for _, dep := range info.Deps {
		version := dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Version
		}
		handles = append(handles, moduleHandle{name: dep.Path, version: version})
	}
	return handles
}

// moduleMatches reports whether a module path is identified by the given
// identifier: an exact path match or a match on the final path element.
func moduleMatches(path, identifier string) bool {
	if path == identifier {
		return true
	}
	return strings.HasSuffix(path, "/"+identifier)
}
