// SPDX-License-Identifier: MPL-2.0

package report

// Unknown is the sentinel version string reported when no version could
// be determined for a component. It is purely descriptive text, never
// parsed or compared.
const Unknown = "unknown"

// VersionAttributes maps component identifiers to non-standard attribute
// names. Most components expose their version under VersionAttr; the ones
// listed here publish it somewhere odd, and the resolver consults this
// table before falling back to the conventional attribute.
//
//nolint:gochecknoglobals // Knowledge base shared by all registries.
var VersionAttributes = map[string]string{
	// Native linear-algebra backends wrapped via cgo report their version
	// through library-specific config strings rather than a module version.
	"openblas": "config",
	"mkl":      "version_string",
	"cuda":     "release",
}

// Version derives a version string for a component, given either a string
// identifier or a live Handle. Any other type returns a *BadEntryError.
//
// For a string identifier the Registry is consulted first; on a miss a
// best-effort one-off import is attempted without persisting the result.
//
// Extraction tries, in order, first success winning:
//  1. the attribute named by VersionAttributes for the component, if any;
//  2. the conventional version attribute (VersionAttr);
//  3. the Unknown sentinel, after a warning-level diagnostic.
//
// Absence of a version never produces an error; only the input-type
// contract violation does.
func (r *Registry) Version(item any) (string, error) {
	var (
		name   string
		handle Handle
	)

	switch v := item.(type) {
	case string:
		name = v
		if stored, ok := r.handles[name]; ok {
			handle = stored
		} else if imported, err := r.importer.Import(name); err == nil {
			handle = imported
		}
	case Handle:
		if isNilHandle(v) {
			return "", &BadEntryError{Value: item}
		}
		handle = v
		name = v.Name()
	default:
		return "", &BadEntryError{Value: item}
	}

	if handle == nil {
		r.logger.Warn("version unknown, component could not be resolved", "component", name)
		return Unknown, nil
	}

	if attr, ok := VersionAttributes[name]; ok {
		if version, ok := handle.Attribute(attr); ok {
			return version, nil
		}
	}
	if version, ok := handle.Attribute(VersionAttr); ok {
		return version, nil
	}

	r.logger.Warn("version attribute unknown", "component", name)
	return Unknown, nil
}
