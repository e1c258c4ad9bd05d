// SPDX-License-Identifier: MPL-2.0

// Package config loads sitrep's configuration: the default component
// lists and the rendering geometry. Configuration is read from a TOML
// file in the platform config directory, overridable via SITREP_*
// environment variables; every value has a shipped default, so a missing
// file is not an error.
package config
