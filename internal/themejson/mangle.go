package themejson

import (
	"regexp"
	"strings"
)

var (
	digitLetter = regexp.MustCompile(`(\d)(\pL)`)
	letterDigit = regexp.MustCompile(`(\pL)(\d)`)
	camelCase   = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
)

// Mangle converts a theme.json key into the fragment WordPress uses in custom property names:
// "h1" → "h-1", "fontFamily" → "font-family", "x2Large" → "x-2-large".
func Mangle(key string) string {
	out := digitLetter.ReplaceAllString(key, "$1-$2")
	out = letterDigit.ReplaceAllString(out, "$1-$2")
	out = camelCase.ReplaceAllString(out, "$1-$2")
	return strings.ToLower(out)
}
