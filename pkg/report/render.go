// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// dateLayout renders the localized date/time header, e.g.
// "Mon Aug 31 12:04:05 2026 UTC".
const dateLayout = "Mon Jan 02 15:04:05 2006 MST"

// pair is one (value, label) cell pair of the table rendering.
type pair struct {
	value string
	label string
}

// Text renders the report as a bordered plain-text block: a rule line of
// textWidth dashes top and bottom, the date/time header, right-aligned
// environment facts and component versions, and the word-wrapped runtime
// version (plus acceleration info when present).
func (r *Report) Text() string {
	var b strings.Builder

	rule := strings.Repeat("-", r.textWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString("  " + r.now().Format(dateLayout) + "\n\n")

	for _, p := range r.pairs() {
		fmt.Fprintf(&b, "%15s : %s\n", p.value, p.label)
	}

	b.WriteString(r.wrappedBlock(RuntimeVersion()))
	if r.accelInfo != "" {
		b.WriteString(r.wrappedBlock(r.accelInfo))
	}

	b.WriteString(rule)
	return b.String()
}

// HTML renders the report as an HTML table: a full-colspan emphasized
// date/time row, alternating (value, label) cell pairs wrapping every
// `columns` pairs with the final row padded to full width, alternating
// row shading, and full-colspan rows for the runtime version and, when
// present, the acceleration library.
func (r *Report) HTML() string {
	const border = "border: 2px solid #fff;'"

	var b strings.Builder

	colspan := func(txt string, nrow int) {
		b.WriteString("  <tr>\n")
		b.WriteString("     <td style='text-align: center; ")
		if nrow == 0 {
			b.WriteString("font-weight: bold; font-size: 1.2em; ")
		} else if nrow%2 == 0 {
			b.WriteString("background-color: #ddd;")
		}
		b.WriteString(border)
		fmt.Fprintf(&b, " colspan='%d'>%s</td>\n", 2*r.columns, txt)
		b.WriteString("  </tr>\n")
	}

	b.WriteString("<table style='border: 3px solid #ddd;'>\n")
	colspan(r.now().Format(dateLayout), 0)

	pairs := r.pairs()
	b.WriteString("  <tr>\n")
	for i, p := range pairs {
		if i > 0 && i%r.columns == 0 {
			b.WriteString("  </tr>\n")
			b.WriteString("  <tr>\n")
		}
		fmt.Fprintf(&b, "    <td style='text-align: right; background-color: #ccc; %s>%s</td>\n", border, p.value)
		fmt.Fprintf(&b, "    <td style='text-align: left; %s>%s</td>\n", border, p.label)
	}
	for i := len(pairs); i%r.columns != 0; i++ {
		fmt.Fprintf(&b, "    <td style= %s></td>\n", border)
		fmt.Fprintf(&b, "    <td style= %s></td>\n", border)
	}
	b.WriteString("  </tr>\n")

	colspan(RuntimeVersion(), 1)
	if r.accelInfo != "" {
		colspan(r.accelInfo, 2)
	}

	b.WriteString("</table>")
	return b.String()
}

// Markdown renders the report as a Markdown document with a pipe table of
// (value, label) pairs, suitable for glamour terminal rendering or pasting
// into an issue tracker.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n\n", r.now().Format(dateLayout))

	pairs := r.pairs()
	for len(pairs)%r.columns != 0 {
		pairs = append(pairs, pair{})
	}

	rows := make([][]pair, 0, len(pairs)/r.columns)
	for start := 0; start < len(pairs); start += r.columns {
		rows = append(rows, pairs[start:start+r.columns])
	}

	writeRow := func(row []pair) {
		for _, p := range row {
			fmt.Fprintf(&b, "| %s | %s ", p.value, p.label)
		}
		b.WriteString("|\n")
	}

	writeRow(rows[0])
	b.WriteString(strings.Repeat("|---:|:---", r.columns) + "|\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	b.WriteString("\n" + RuntimeVersion() + "\n")
	if r.accelInfo != "" {
		b.WriteString("\n" + r.accelInfo + "\n")
	}
	return b.String()
}

// WrappedRuntimeVersion returns the Go runtime version string
// word-wrapped to the given width, each line prefixed with a two-space
// indent and a blank line above. Pure formatting, no resolution logic.
func WrappedRuntimeVersion(width int) string {
	r := Report{textWidth: width}
	return r.wrappedBlock(RuntimeVersion())
}

// pairs collects the (value, label) pairs shared by every rendering:
// environment facts first, then each registered component in registration
// order.
func (r *Report) pairs() []pair {
	out := []pair{
		{value: PlatformName(), label: "OS"},
		{value: strconv.Itoa(CPUCount()), label: "CPU(s)"},
	}
	if r.totalRAM != "" {
		out = append(out, pair{value: r.totalRAM, label: "RAM"})
	}
	for _, name := range r.registry.Names() {
		// Version cannot fail for a registered name.
		version, _ := r.registry.Version(name)
		out = append(out, pair{value: version, label: name})
	}
	return out
}

// wrappedBlock word-wraps txt to the report's text width, indenting each
// line by two spaces, with a blank line above.
func (r *Report) wrappedBlock(txt string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(wordwrap.String(txt, r.textWidth-4), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
