package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

// Format selects a report renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format string case-insensitively.
// Accepts "md" as "markdown".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format: %s", s)
	}
}

// Meta describes one scan run. It is embedded in the structured output
// formats so downstream consumers can correlate reports.
type Meta struct {
	ScanID      string `json:"scan_id" yaml:"scan_id"`
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Root        string `json:"root" yaml:"root"`
	Findings    int    `json:"findings" yaml:"findings"`
}

// NewMeta builds metadata for a completed scan of root.
func NewMeta(root string, findingCount int) Meta {
	return Meta{
		ScanID:      uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Root:        root,
		Findings:    findingCount,
	}
}

// Report is the serialized form used by the JSON and YAML renderers.
type Report struct {
	Meta     Meta                   `json:"meta" yaml:"meta"`
	Findings []scriptdetect.Finding `json:"findings" yaml:"findings"`
}

// Render writes the findings to w in the requested format. color only
// affects the text renderer; structured formats never carry ANSI codes.
func Render(w io.Writer, format Format, meta Meta, findings []scriptdetect.Finding, color bool) error {
	switch format {
	case FormatText:
		return renderText(w, meta, findings, color)
	case FormatJSON:
		return renderJSON(w, meta, findings)
	case FormatYAML:
		return renderYAML(w, meta, findings)
	case FormatMarkdown:
		return renderMarkdown(w, meta, findings)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

func renderJSON(w io.Writer, meta Meta, findings []scriptdetect.Finding) error {
	rep := Report{Meta: meta, Findings: findings}
	if rep.Findings == nil {
		rep.Findings = []scriptdetect.Finding{}
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func renderYAML(w io.Writer, meta Meta, findings []scriptdetect.Finding) error {
	rep := Report{Meta: meta, Findings: findings}
	if rep.Findings == nil {
		rep.Findings = []scriptdetect.Finding{}
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
