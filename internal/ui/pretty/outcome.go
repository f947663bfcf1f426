package pretty

import (
	"strings"

	"github.com/yaklabco/hookfix/pkg/runner"
)

// labelWidth pads status labels to a common width so file paths line up.
const labelWidth = 9

// FormatOutcome renders a single per-file outcome line.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome) string {
	var label, detail string
	var style = s.Dim

	switch outcome.Status {
	case runner.StatusFixed:
		label, style = "fixed", s.Fixed
		detail = describeBlocks(outcome)
	case runner.StatusWouldFix:
		label, style = "would fix", s.WouldFix
		detail = describeBlocks(outcome)
	case runner.StatusUnchanged:
		label, style = "ok", s.Dim
	case runner.StatusMissing:
		label, style = "missing", s.Missing
	case runner.StatusSkipped:
		label, style = "skipped", s.Skipped
		detail = outcome.Reason
	case runner.StatusError:
		label, style = "error", s.Errored
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
	}

	line := style.Render(pad(label)) + " " + s.FilePath.Render(outcome.Path)
	if detail != "" {
		line += s.Detail.Render(" (" + detail + ")")
	}
	return line + "\n"
}

// FormatDiff renders a unified diff with per-line coloring.
func (s *Styles) FormatDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			builder.WriteString(s.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			builder.WriteString(s.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			builder.WriteString(s.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			builder.WriteString(s.DiffRemove.Render(line))
		default:
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// describeBlocks summarizes which components were repaired.
func describeBlocks(outcome runner.FileOutcome) string {
	if len(outcome.Blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(outcome.Blocks))
	for _, block := range outcome.Blocks {
		parts = append(parts, block.String())
	}
	return strings.Join(parts, ", ")
}

func pad(label string) string {
	if len(label) >= labelWidth {
		return label
	}
	return label + strings.Repeat(" ", labelWidth-len(label))
}
