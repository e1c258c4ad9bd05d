// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	// DefaultColumns is the default number of (version, name) cell pairs
	// per row in table rendering.
	DefaultColumns = 4

	// DefaultTextWidth is the default wrap width for plain-text rendering.
	DefaultTextWidth = 54
)

// Default component lists. Core holds the well-known numerical-computing
// modules of the Go ecosystem; Optional holds the interactive/plotting
// ones. Components that are not compiled into the consuming binary degrade
// to a warning and are left out of the report.
//
//nolint:gochecknoglobals // Shipped defaults, overridable per Report.
var (
	DefaultCore     = []any{"gonum.org/v1/gonum", "golang.org/x/exp"}
	DefaultOptional = []any{"github.com/charmbracelet/bubbletea", "gonum.org/v1/plot"}
)

// accelerationModules are module paths of native linear-algebra and GPU
// acceleration bindings worth calling out in a report when linked in.
//
//nolint:gochecknoglobals // Knowledge base, read-only.
var accelerationModules = []string{
	"gonum.org/v1/netlib",
	"gorgonia.org/cu",
}

type (
	// Report is a fully-resolved environment report: a populated Registry
	// plus rendering configuration and the capability probes evaluated at
	// construction time. Construct one per report; a Report is not safe
	// for concurrent use.
	Report struct {
		registry  *Registry
		columns   int
		textWidth int
		logger    *log.Logger

		// Probe results, evaluated once in New and stored here rather
		// than as process-global state.
		accelInfo   string
		totalRAM    string
		interactive bool

		now func() time.Time
	}

	// Option configures a Report under construction.
	Option func(*options)

	options struct {
		core       []any
		optional   []any
		additional []any
		columns    int
		textWidth  int
		importer   Importer
		logger     *log.Logger
		accelProbe func() (string, bool)
		ramProbe   func() (uint64, error)
		ttyProbe   func() bool
		now        func() time.Time
	}
)

// WithCore overrides the core component list (default DefaultCore).
func WithCore(items ...any) Option {
	return func(o *options) { o.core = items }
}

// WithOptional overrides the optional component list (default
// DefaultOptional).
func WithOptional(items ...any) Option {
	return func(o *options) { o.optional = items }
}

// WithAdditional sets the additional component list (default empty).
func WithAdditional(items ...any) Option {
	return func(o *options) { o.additional = items }
}

// WithColumns sets the number of (version, name) pairs per table row.
// Non-positive values keep the default.
func WithColumns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithTextWidth sets the plain-text wrap width. Non-positive values keep
// the default.
func WithTextWidth(w int) Option {
	return func(o *options) {
		if w > 0 {
			o.textWidth = w
		}
	}
}

// WithImporter overrides the component importer (default
// BuildInfoImporter).
func WithImporter(i Importer) Option {
	return func(o *options) { o.importer = i }
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithAccelerationProbe overrides the acceleration-library probe, mainly
// for tests. The probe returns a descriptive version string and whether an
// acceleration library is present.
func WithAccelerationProbe(probe func() (string, bool)) Option {
	return func(o *options) { o.accelProbe = probe }
}

// WithRAMProbe overrides the total-RAM probe, mainly for tests.
func WithRAMProbe(probe func() (uint64, error)) Option {
	return func(o *options) { o.ramProbe = probe }
}

// WithClock overrides the report timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds a Report: it resolves and registers the core, optional, and
// additional component lists in that order, then evaluates the
// environment probes. Components that cannot be located are logged and
// skipped; a list element of an unsupported type returns a
// *BadEntryError.
func New(opts ...Option) (*Report, error) {
	o := options{
		core:       DefaultCore,
		optional:   DefaultOptional,
		columns:    DefaultColumns,
		textWidth:  DefaultTextWidth,
		accelProbe: probeAcceleration,
		ramProbe:   probeTotalRAM,
		ttyProbe:   stdoutIsTerminal,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	registry := NewRegistry(o.importer, o.logger)
	for _, list := range [][]any{o.core, o.optional, o.additional} {
		if err := registry.Add(list); err != nil {
			return nil, err
		}
	}

	r := &Report{
		registry:    registry,
		columns:     o.columns,
		textWidth:   o.textWidth,
		logger:      o.logger,
		interactive: o.ttyProbe(),
		now:         o.now,
	}
	if info, ok := o.accelProbe(); ok {
		r.accelInfo = info
	}
	if total, err := o.ramProbe(); err == nil {
		r.totalRAM = fmt.Sprintf("%.1f GB", float64(total)/(1<<30))
	}
	return r, nil
}

// Registry exposes the report's component registry.
func (r *Report) Registry() *Registry { return r.registry }

// Columns reports the number of (version, name) pairs per table row.
func (r *Report) Columns() int { return r.columns }

// TextWidth reports the plain-text wrap width.
func (r *Report) TextWidth() int { return r.textWidth }

// Interactive reports whether the report was constructed with stdout
// attached to a terminal. Callers use it to pick a default rendering.
func (r *Report) Interactive() bool { return r.interactive }

// PlatformName returns the OS family name of the current system, e.g.
// "linux", "windows", or "darwin". It delegates entirely to the runtime
// and performs no fallback of its own.
func PlatformName() string {
	return runtime.GOOS
}

// CPUCount returns the number of logical CPUs usable by the current
// process.
func CPUCount() int {
	return runtime.NumCPU()
}

// RuntimeVersion returns a descriptive Go runtime version string: release,
// platform, and compiler.
func RuntimeVersion() string {
	return fmt.Sprintf("%s %s/%s (compiler %s)",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.Compiler)
}

// probeAcceleration scans the binary's module graph for known native
// acceleration bindings. Evaluated once per Report.
func probeAcceleration() (string, bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range info.Deps {
		for _, path := range accelerationModules {
			if dep.Path == path {
				return fmt.Sprintf("%s %s", dep.Path, dep.Version), true
			}
		}
	}
	return "", false
}

// probeTotalRAM reports the total physical memory of the host.
func probeTotalRAM() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
