// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// ErrBadEntry is the sentinel error wrapped by BadEntryError.
var ErrBadEntry = errors.New("bad registry entry")

type (
	// BadEntryError is returned when a value that is neither a string
	// identifier nor a Handle is passed where a component was expected.
	// This is a caller contract violation, distinct from "component not
	// installed", and is never silently coerced.
	// It wraps ErrBadEntry for errors.Is() compatibility.
	BadEntryError struct {
		Value any
	}

	// Registry owns an insertion-ordered mapping from component name to
	// resolved Handle. Entries are only ever added; a later add under an
	// existing name overwrites the stored handle but keeps the name's
	// original position. A Registry is not safe for concurrent use.
	Registry struct {
		order    []string
		handles  map[string]Handle
		importer Importer
		logger   *log.Logger
	}
)

// Error implements the error interface.
func (e *BadEntryError) Error() string {
	return fmt.Sprintf("%v: cannot register value of type %T", ErrBadEntry, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *BadEntryError) Unwrap() error {
	return ErrBadEntry
}

// NewRegistry returns an empty Registry resolving identifiers through the
// given importer and reporting resolution failures through logger. A nil
// importer defaults to BuildInfoImporter; a nil logger defaults to the
// package default logger.
func NewRegistry(importer Importer, logger *log.Logger) *Registry {
	if importer == nil {
		importer = BuildInfoImporter{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		handles:  make(map[string]Handle),
		importer: importer,
		logger:   logger,
	}
}

// Add registers each item in order. An item is one of:
//   - string: resolved through the importer; a component that cannot be
//     located is logged at warning level and skipped, never aborting the
//     remaining items.
//   - Handle: stored under its own identity name after validation.
//   - nil: skipped silently.
//
// Any other type returns a *BadEntryError immediately; items processed
// before the offending one remain registered.
func (r *Registry) Add(items []any) error {
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			// Explicit absent marker.
		case string:
			r.addByName(v)
		case Handle:
			if err := r.addHandle(v, ""); err != nil {
				return err
			}
		default:
			return &BadEntryError{Value: item}
		}
	}
	return nil
}

// AddHandle registers a live handle under an explicit name, overriding the
// handle's own identity. An empty name falls back to the handle identity.
func (r *Registry) AddHandle(h Handle, name string) error {
	return r.addHandle(h, name)
}

// Names returns all registered names in first-insertion order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Handle returns the stored handle for a name, if any.
func (r *Registry) Handle(name string) (Handle, bool) {
	h, ok := r.handles[name]
	return h, ok
}

// Len reports the number of registered components.
func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) addByName(name string) {
	h, err := r.importer.Import(name)
	if err != nil {
		r.logger.Warn("could not resolve component, skipping", "component", name)
		return
	}
	r.store(name, h)
}

func (r *Registry) addHandle(h Handle, name string) error {
	if isNilHandle(h) {
		return &BadEntryError{Value: h}
	}
	if name == "" {
		name = h.Name()
	}
	if strings.TrimSpace(name) == "" {
		return &BadEntryError{Value: h}
	}
	r.store(name, h)
	return nil
}

// isNilHandle reports whether h is nil or a typed nil (a nil pointer
// stored in a non-nil interface value). Method dispatch on such a handle
// would dereference nil, so it is a stub to reject, never to store.
func isNilHandle(h Handle) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// store keeps first-insertion order across overwrites.
func (r *Registry) store(name string, h Handle) {
	if _, seen := r.handles[name]; !seen {
		r.order = append(r.order, name)
	}
	r.handles[name] = h
}
