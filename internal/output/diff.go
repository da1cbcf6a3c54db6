package output

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderFileDiff renders the difference between the current content of path
// and the content a generator wants to write. YAML files get a structural
// dyff report; everything else gets a line diff.
func RenderFileDiff(path string, current, proposed []byte, useColor bool) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		out, err := diffYAML(current, proposed, useColor)
		if err == nil {
			return out, nil
		}
		// Hand-edited YAML that no longer parses still deserves a diff.
		Debug("falling back to line diff", "path", path, "error", err)
	}
	return diffLines(current, proposed, useColor), nil
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(current, proposed []byte, useColor bool) (string, error) {
	if len(current) == 0 && len(proposed) == 0 {
		return "", nil
	}

	currentInput, err := parseYAMLInput("current", current)
	if err != nil {
		return "", fmt.Errorf("parsing current YAML: %w", err)
	}

	proposedInput, err := parseYAMLInput("proposed", proposed)
	if err != nil {
		return "", fmt.Errorf("parsing proposed YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(currentInput, proposedInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// diffLines renders a line-oriented diff with "-"/"+" prefixes.
func diffLines(current, proposed []byte, useColor bool) string {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(current), string(proposed))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		style := StyleDim
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			style = StatusStyle(StatusCreate)
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			style = StatusStyle(StatusRemove)
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			text := prefix + strings.TrimSuffix(line, "\n")
			if useColor {
				text = style.Render(text)
			}
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
