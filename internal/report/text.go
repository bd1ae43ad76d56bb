package report

import (
	"fmt"
	"io"

	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

// renderText writes a human-readable report. With color enabled the output
// uses the lipgloss styles from styles.go; otherwise plain text.
func renderText(w io.Writer, meta Meta, findings []scriptdetect.Finding, color bool) error {
	style := func(s string, st interface{ Render(...string) string }) string {
		if !color {
			return s
		}
		return st.Render(s)
	}

	header := fmt.Sprintf("Lifecycle script audit of %s", meta.Root)
	if _, err := fmt.Fprintln(w, style(header, titleStyle)); err != nil {
		return err
	}

	if len(findings) == 0 {
		msg := "No packages with lifecycle scripts found."
		_, err := fmt.Fprintln(w, style(msg, cleanStyle))
		return err
	}

	for _, f := range findings {
		name := f.Name
		if name == "" {
			name = "(unnamed)"
		}
		label := name
		if f.Version != "" {
			label = fmt.Sprintf("%s@%s", name, f.Version)
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", style(label, packageStyle)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", style(f.Path, pathStyle)); err != nil {
			return err
		}
		for _, hc := range f.Scripts.Commands() {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", style(string(hc.Hook), hookStyle), hc.Command); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n%d package(s) declare lifecycle scripts.\n", len(findings))
	return err
}
