package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// OutputFormat specifies how run summaries are written.
type OutputFormat string

const (
	// FormatText writes a styled table.
	FormatText OutputFormat = "text"

	// FormatJSON writes indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML writes YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text", "table":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q; valid formats: %s", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "json", "yaml"}
}

// ResultRow is one file action in a run summary.
type ResultRow struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	Path   string `json:"path"`
}

// RunSummary is the machine-readable summary of a generate or destroy run.
type RunSummary struct {
	ClassName string      `json:"className"`
	Mode      string      `json:"mode"`
	Pretend   bool        `json:"pretend"`
	Actions   []ResultRow `json:"actions"`
}

// WriteSummary writes the summary to w in the given format.
func WriteSummary(w io.Writer, summary RunSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, RenderResultTable(summary.Actions))
		return err
	}
}
