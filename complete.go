package wptokens

import (
	"strings"

	"github.com/yacobolo/wptokens/internal/themejson"
)

// CompletionTrigger is the character sequence that opens the suggestion list
const CompletionTrigger = "--"

// CompletionKindVariable marks a custom property suggestion
const CompletionKindVariable = "variable"

// CompletionItem is one suggestion offered while typing a property name
type CompletionItem struct {
	Label  string `json:"label"`  // "--wp--preset--color--primary"
	Detail string `json:"detail"` // "#000"
	Kind   string `json:"kind"`   // "variable"
}

// Complete returns the tokens whose custom property name starts with prefix,
// in token order. An empty prefix matches everything.
func Complete(tokens []themejson.Token, prefix string) []CompletionItem {
	items := make([]CompletionItem, 0, len(tokens))
	for _, tok := range tokens {
		label := tok.CustomProperty()
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		items = append(items, CompletionItem{
			Label:  label,
			Detail: tok.Value.Text(),
			Kind:   CompletionKindVariable,
		})
	}
	return items
}

// CompleteAt returns suggestions for a cursor in a stylesheet. Files that are not
// stylesheets get none. A cursor outside any name (manual invocation) gets every token;
// a name that cannot become a custom property gets none. line and column are 1-based.
func CompleteAt(tokens []themejson.Token, filename, content string, line, column int) []CompletionItem {
	if !IsStylesheet(filename) {
		return []CompletionItem{}
	}

	lines := strings.Split(content, "\n")
	if line < 1 || line > len(lines) {
		return []CompletionItem{}
	}

	prefix := CompletionPrefix(strings.TrimRight(lines[line-1], "\r"), column)
	if !strings.HasPrefix(prefix, CompletionTrigger) && !strings.HasPrefix(CompletionTrigger, prefix) {
		return []CompletionItem{}
	}
	return Complete(tokens, prefix)
}
