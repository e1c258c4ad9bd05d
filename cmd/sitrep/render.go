// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/glamour"

// renderMarkdown renders a markdown report for terminal display using
// glamour with automatic light/dark styling.
func renderMarkdown(md string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
