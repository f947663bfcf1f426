package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/hookfix/pkg/runner"
)

const (
	defaultDividerWidth = 40
	maxDividerWidth     = 72
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files fixed (5 hook blocks relocated), 2 unchanged, 1 missing".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesFixed == 0 && stats.FilesWouldFix == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("No misplaced hooks found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesListed)) + "\n"
	}

	var parts []string

	if stats.FilesFixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s fixed (%d hook %s relocated)",
			stats.FilesFixed, plural(stats.FilesFixed), stats.BlocksRelocated, blockWord(stats.BlocksRelocated))))
	}
	if stats.FilesWouldFix > 0 {
		parts = append(parts, s.WouldFix.Render(fmt.Sprintf("%d %s would change",
			stats.FilesWouldFix, plural(stats.FilesWouldFix))))
	}
	if stats.FilesUnchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", stats.FilesUnchanged))
	}
	if stats.FilesMissing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", stats.FilesMissing))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", dividerWidth()))
	builder.WriteString("\n")

	builder.WriteString("  Files listed:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesListed)) + "\n")

	if stats.FilesFixed > 0 {
		builder.WriteString("  Files fixed:       " +
			s.Success.Render(strconv.Itoa(stats.FilesFixed)) + "\n")
		builder.WriteString("  Hooks relocated:   " +
			s.Success.Render(strconv.Itoa(stats.BlocksRelocated)) + "\n")
	}
	if stats.FilesWouldFix > 0 {
		builder.WriteString("  Would change:      " +
			s.WouldFix.Render(strconv.Itoa(stats.FilesWouldFix)) + "\n")
	}
	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Unchanged:         " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}
	if stats.FilesMissing > 0 {
		builder.WriteString("  Missing:           " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesMissing)) + "\n")
	}
	if stats.FilesSkipped > 0 {
		builder.WriteString("  Skipped:           " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Errored:           " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	case stats.FilesWouldFix > 0:
		builder.WriteString(s.WouldFix.Render("Fixes pending"))
	default:
		builder.WriteString(s.Success.Render("All clean"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// dividerWidth sizes the summary divider to the terminal, within bounds.
func dividerWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultDividerWidth
	}
	if width > maxDividerWidth {
		return maxDividerWidth
	}
	return width
}

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

func blockWord(n int) string {
	if n == 1 {
		return "block"
	}
	return "blocks"
}
