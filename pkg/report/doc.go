// SPDX-License-Identifier: MPL-2.0

// Package report builds reproducible environment reports: the operating
// system, CPU count, total RAM, the Go runtime version, and the versions
// of a configurable set of components resolved from the running binary's
// build information or from live handles supplied by the caller.
//
// A report is meant to be pasted at the top of an analysis session or a
// bug ticket, so the executing environment is documented. Missing
// components never fail report generation; they degrade to diagnostics
// and the "unknown" sentinel.
package report
