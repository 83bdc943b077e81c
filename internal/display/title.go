// Package display derives human-readable labels for table output.
package display

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title turns a media resource path into a presentable title: the base name
// without extension, separator runs collapsed to spaces, title-cased.
func Title(resourcePath string) string {
	if resourcePath == "" {
		return "Unknown Media"
	}
	base := filepath.Base(resourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown Media"
	}
	return cases.Title(language.Und).String(title)
}
