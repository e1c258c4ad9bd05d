// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"strings"
	"testing"
)

func TestText_Borders(t *testing.T) {
	r, _ := newTestReport(t, numericComponents(),
		WithCore("numericlib"),
		WithOptional(),
		WithTextWidth(40),
	)

	text := r.Text()
	rule := strings.Repeat("-", 40)

	if !strings.HasPrefix(text, "\n"+rule+"\n") {
		t.Errorf("Text() does not open with a %d-dash rule:\n%s", 40, text)
	}
	if !strings.HasSuffix(text, rule) {
		t.Errorf("Text() does not close with a %d-dash rule:\n%s", 40, text)
	}
}

func TestText_Lines(t *testing.T) {
	r, _ := newTestReport(t, numericComponents(),
		WithCore("numericlib"),
		WithOptional("plotlib"),
	)

	text := r.Text()

	for _, want := range []string{
		"  Mon Aug 31 10:30:00 2026 UTC\n",
		fmt.Sprintf("%15s : OS\n", PlatformName()),
		fmt.Sprintf("%15d : CPU(s)\n", CPUCount()),
		fmt.Sprintf("%15s : numericlib\n", "2.1.0"),
		fmt.Sprintf("%15s : plotlib\n", "0.9.3"),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, "  "+RuntimeVersion()) {
		t.Errorf("Text() missing indented runtime version block:\n%s", text)
	}
}

func TestText_ComponentOrderMatchesRegistration(t *testing.T) {
	r, _ := newTestReport(t, numericComponents(),
		WithCore("plotlib"),
		WithOptional("numericlib"),
	)

	text := r.Text()
	if strings.Index(text, "plotlib") > strings.Index(text, "numericlib") {
		t.Errorf("Text() lists components out of registration order:\n%s", text)
	}
}

func TestHTML_Structure(t *testing.T) {
	r, _ := newTestReport(t, numericComponents(),
		WithCore("numericlib"),
		WithOptional(),
		WithColumns(4),
	)

	html := r.HTML()

	if !strings.HasPrefix(html, "<table style='border: 3px solid #ddd;'>\n") {
		t.Errorf("HTML() does not open a styled table:\n%s", html)
	}
	if !strings.HasSuffix(html, "</table>") {
		t.Errorf("HTML() does not close the table:\n%s", html)
	}
	if !strings.Contains(html, "font-weight: bold; font-size: 1.2em; ") {
		t.Errorf("HTML() missing emphasized date row:\n%s", html)
	}
	if !strings.Contains(html, "colspan='8'>") {
		t.Errorf("HTML() colspan does not span 2*columns cells:\n%s", html)
	}
}

func TestHTML_PaddingToFullRow(t *testing.T) {
	// Five components plus the OS and CPU pairs make 7 pairs: with four
	// pairs per row that is two data rows, the second padded with one
	// empty pair.
	components := numericComponents()
	components["extra1"] = NewStaticHandle("extra1", map[string]string{VersionAttr: "1.0"})
	components["extra2"] = NewStaticHandle("extra2", map[string]string{VersionAttr: "2.0"})

	r, _ := newTestReport(t, components,
		WithCore("numericlib", "plotlib"),
		WithOptional("interp", "extra1"),
		WithAdditional("extra2"),
		WithColumns(4),
	)

	html := r.HTML()

	// Rows: date colspan + two data rows + runtime colspan.
	if got := strings.Count(html, "<tr>"); got != 4 {
		t.Errorf("HTML() has %d rows, want 4:\n%s", got, html)
	}
	// One padding pair = two empty cells.
	if got := strings.Count(html, "<td style= border"); got != 2 {
		t.Errorf("HTML() has %d empty padding cells, want 2:\n%s", got, html)
	}
}

func TestHTML_ExactRowCount(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		core     []any
		wantRows int
	}{
		{
			// OS + CPU + 1 component = 3 pairs -> one data row at 4/row.
			name:     "single data row",
			columns:  4,
			core:     []any{"numericlib"},
			wantRows: 3,
		},
		{
			// 3 pairs at 1/row -> three data rows.
			name:     "one pair per row",
			columns:  1,
			core:     []any{"numericlib"},
			wantRows: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestReport(t, numericComponents(),
				WithCore(tt.core...),
				WithOptional(),
				WithColumns(tt.columns),
			)

			if got := strings.Count(r.HTML(), "<tr>"); got != tt.wantRows {
				t.Errorf("HTML() has %d rows, want %d", got, tt.wantRows)
			}
		})
	}
}

func TestWrappedRuntimeVersion(t *testing.T) {
	got := WrappedRuntimeVersion(54)

	if !strings.HasPrefix(got, "\n  ") {
		t.Errorf("WrappedRuntimeVersion() = %q, want a blank line then indent", got)
	}
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n")[1:] {
		if len(line) > 54 {
			t.Errorf("line %q exceeds the wrap width", line)
		}
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q lacks the two-space indent", line)
		}
	}
}

func TestMarkdown(t *testing.T) {
	r, _ := newTestReport(t, numericComponents(),
		WithCore("numericlib"),
		WithOptional(),
		WithColumns(2),
	)

	md := r.Markdown()

	if !strings.HasPrefix(md, "**Mon Aug 31 10:30:00 2026 UTC**\n\n") {
		t.Errorf("Markdown() does not open with the bold date:\n%s", md)
	}
	if !strings.Contains(md, "|---:|:---|---:|:---|") {
		t.Errorf("Markdown() missing the table separator row:\n%s", md)
	}
	if !strings.Contains(md, "| 2.1.0 | numericlib ") {
		t.Errorf("Markdown() missing the component pair:\n%s", md)
	}
	if !strings.Contains(md, RuntimeVersion()) {
		t.Errorf("Markdown() missing the runtime version:\n%s", md)
	}
}
