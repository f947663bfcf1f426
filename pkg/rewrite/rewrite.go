// Package rewrite implements the hook relocation engine.
//
// The engine repairs one specific structural defect in generated TSX
// component files: theme/style hook calls emitted inside the component's
// destructured props list instead of inside the function body. It is a
// narrow line-shape matcher, not a TypeScript parser: anything that does
// not match the defect shape exactly is copied through untouched, so a
// false negative is possible but a false positive is not.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultThemeBinding is the first binding name of the theme hook line
// (`const { colors } = useTheme();`).
const DefaultThemeBinding = "colors"

// DefaultStylesBinding is the binding name of the styles hook line
// (`const styles = useStyles();`).
const DefaultStylesBinding = "styles"

// paramIndent is the indentation of props and relocated hook lines.
// Component headers sit at column zero, so the body base indent is one level.
const paramIndent = "  "

// Options configures which hook bindings the engine recognizes.
// Zero values fall back to the defaults observed in generated components.
type Options struct {
	// ThemeBinding is the first destructured name of the theme hook line.
	ThemeBinding string

	// StylesBinding is the binding name of the styles hook line.
	StylesBinding string
}

// Block describes one repaired defect occurrence.
type Block struct {
	// Component is the component name from the matched header.
	Component string

	// Line is the 1-based line number of the header in the original content.
	Line int

	// Params is the number of prop lines the hook preamble was moved past.
	Params int
}

// Result is the outcome of a single rewrite pass.
type Result struct {
	// Content is the rewritten content. Equal to the input when Changed is false.
	Content []byte

	// Changed reports whether any block was rewritten.
	Changed bool

	// Blocks lists the repaired occurrences in file order.
	Blocks []Block
}

// Rewriter detects and repairs misplaced hook preambles.
// A Rewriter is pure and safe for reuse across files.
type Rewriter struct {
	header   *regexp.Regexp
	preamble [2]*regexp.Regexp
	param    *regexp.Regexp
	closer   *regexp.Regexp
}

// New creates a Rewriter for the given options.
func New(opts Options) *Rewriter {
	theme := opts.ThemeBinding
	if theme == "" {
		theme = DefaultThemeBinding
	}
	styles := opts.StylesBinding
	if styles == "" {
		styles = DefaultStylesBinding
	}

	return &Rewriter{
		// export const Name = ({  or  export const Name = React.memo<Props>(({
		header: regexp.MustCompile(`^export const ([A-Za-z_$][A-Za-z0-9_$]*) = (?:React\.memo<[^>]+>\()?\(\{$`),
		preamble: [2]*regexp.Regexp{
			regexp.MustCompile(`^` + paramIndent + `const \{ ` + regexp.QuoteMeta(theme) + `\b.+$`),
			regexp.MustCompile(`^` + paramIndent + `const ` + regexp.QuoteMeta(styles) + `\b.+$`),
		},
		param:  regexp.MustCompile(`^` + paramIndent + `[A-Za-z_$][A-Za-z0-9_$]*,?$`),
		closer: regexp.MustCompile(`^\}\) => \{$`),
	}
}

// NewDefault creates a Rewriter with the default hook bindings.
func NewDefault() *Rewriter {
	return New(Options{})
}

// Rewrite scans content for the defect shape and relocates each matched
// hook preamble to just after the parameter-list closer. Content outside
// matched blocks is preserved byte for byte. Rewrite is idempotent: its
// output never contains the defect shape, so a second pass is a no-op.
func (r *Rewriter) Rewrite(content []byte) Result {
	lines := strings.Split(string(content), "\n")

	out := make([]string, 0, len(lines))
	var blocks []Block

	idx := 0
	for idx < len(lines) {
		match, ok := r.matchBlock(lines, idx)
		if !ok {
			out = append(out, lines[idx])
			idx++
			continue
		}

		out = append(out, r.render(lines, match)...)
		blocks = append(blocks, Block{
			Component: match.component,
			Line:      idx + 1,
			Params:    match.paramsEnd - match.paramsStart,
		})
		idx = match.closerIdx + 1
	}

	if len(blocks) == 0 {
		return Result{Content: content}
	}

	return Result{
		Content: []byte(strings.Join(out, "\n")),
		Changed: true,
		Blocks:  blocks,
	}
}

// render emits the corrected block: header, props, closer, then the hook
// preamble normalized to the body base indent, then a separating blank line.
func (r *Rewriter) render(lines []string, match blockMatch) []string {
	rendered := make([]string, 0, match.closerIdx-match.headerIdx+2)

	rendered = append(rendered, lines[match.headerIdx])
	rendered = append(rendered, lines[match.paramsStart:match.paramsEnd]...)
	rendered = append(rendered, lines[match.closerIdx])
	for _, hook := range lines[match.headerIdx+1 : match.headerIdx+3] {
		rendered = append(rendered, paramIndent+strings.TrimLeft(hook, " \t"))
	}
	rendered = append(rendered, "")

	return rendered
}

// String implements fmt.Stringer for diagnostics.
func (b Block) String() string {
	return fmt.Sprintf("%s (line %d)", b.Component, b.Line)
}
