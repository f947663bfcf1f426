package runner

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContextLines is the number of context lines around each hunk.
const diffContextLines = 3

// unifiedDiff renders a unified diff of the rewrite for dry-run output.
func unifiedDiff(path string, original, modified []byte) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(modified)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("unified diff for %s: %w", path, err)
	}
	return text, nil
}
