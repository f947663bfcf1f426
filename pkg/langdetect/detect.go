// Package langdetect guards the rewrite engine against mislisted files.
// It uses go-enry to decide whether a configured path plausibly contains
// JavaScript or TypeScript source; anything else is skipped, never rewritten.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// scriptExtensions are accepted without content inspection.
var scriptExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
	".mts": true,
	".cts": true,
}

// scriptLanguages are the go-enry language names accepted from detection.
var scriptLanguages = map[string]bool{
	"JavaScript": true,
	"TypeScript": true,
	"JSX":        true,
	"TSX":        true,
}

// IsScript reports whether the file at path looks like JavaScript or
// TypeScript source. The extension is authoritative when it is one of the
// known script extensions; otherwise the content is classified with go-enry.
func IsScript(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if scriptExtensions[ext] {
		return true
	}
	if len(content) == 0 {
		return false
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	return scriptLanguages[lang]
}
