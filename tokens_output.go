package wptokens

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/wptokens/internal/themejson"
	"gopkg.in/yaml.v3"
)

// ParseListFormat validates a list format name; "" selects text
func ParseListFormat(name string) (ListFormat, error) {
	switch ListFormat(name) {
	case "", ListText:
		return ListText, nil
	case ListJSON, ListCSS, ListYAML:
		return ListFormat(name), nil
	}
	return "", fmt.Errorf("unknown list format %q (want text, json, yaml or css)", name)
}

// WriteTokens writes tokens in the given format
func WriteTokens(w io.Writer, tokens []themejson.Token, format ListFormat, useColors bool) error {
	switch format {
	case ListJSON:
		if tokens == nil {
			tokens = []themejson.Token{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tokens)

	case ListYAML:
		if tokens == nil {
			tokens = []themejson.Token{}
		}
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(tokens); err != nil {
			_ = encoder.Close()
			return err
		}
		return encoder.Close()

	case ListCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, tok := range tokens {
			fmt.Fprintf(&b, "\t%s: %s;\n", tok.CustomProperty(), tok.Value.Text())
		}
		b.WriteString("}\n")
		_, err := io.WriteString(w, b.String())
		return err

	default:
		width := 0
		for _, tok := range tokens {
			width = max(width, len(tok.CustomProperty()))
		}
		for _, tok := range tokens {
			name := fmt.Sprintf("%-*s", width, tok.CustomProperty())
			if _, err := fmt.Fprintf(w, "%s  %s\n", RenderStyle(StyleCyan, name, useColors), tok.Value.Text()); err != nil {
				return err
			}
		}
		return nil
	}
}

// FilterCategory returns the tokens of one category from store order, or all tokens for ""
func FilterCategory(store TokenSource, category string) ([]themejson.Token, error) {
	if category == "" {
		return store.ToArray(), nil
	}
	spec, ok := themejson.LookupCategory(category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return store.Tokens(spec.Category), nil
}
