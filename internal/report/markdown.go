package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

// renderMarkdown writes a Markdown report with a summary and one table row
// per (package, hook) pair.
func renderMarkdown(w io.Writer, meta Meta, findings []scriptdetect.Finding) error {
	var sb strings.Builder

	sb.WriteString("# Lifecycle Script Audit\n\n")
	sb.WriteString(fmt.Sprintf("**Root:** `%s`\n", meta.Root))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", meta.GeneratedAt))
	sb.WriteString(fmt.Sprintf("**Scan ID:** %s\n\n", meta.ScanID))

	// Per-hook counts
	counts := make(map[scriptdetect.Hook]int)
	for _, f := range findings {
		for _, hc := range f.Scripts.Commands() {
			counts[hc.Hook]++
		}
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Hook | Packages |\n")
	sb.WriteString("| :--- | :--- |\n")
	for _, hook := range scriptdetect.Hooks() {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", hook, counts[hook]))
	}
	sb.WriteString("\n")

	sb.WriteString("## Findings\n\n")
	if len(findings) == 0 {
		sb.WriteString("_No packages with lifecycle scripts._\n")
	} else {
		sb.WriteString("| Package | Version | Hook | Command | Manifest |\n")
		sb.WriteString("| :--- | :--- | :--- | :--- | :--- |\n")
		for _, f := range findings {
			for _, hc := range f.Scripts.Commands() {
				// Sanitize command for table
				cmd := strings.ReplaceAll(hc.Command, "|", "\\|")
				cmd = strings.ReplaceAll(cmd, "\n", " ")
				sb.WriteString(fmt.Sprintf("| %s | %s | %s | `%s` | %s |\n",
					f.Name, f.Version, hc.Hook, cmd, f.Path))
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
