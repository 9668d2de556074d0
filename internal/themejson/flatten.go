package themejson

// Flatten walks node depth-first in document order and returns one token per scalar field
// or leaf record. Names take the form wp--{category}{prefix}--{key}, where nested keys are
// appended to prefix as "--" + Mangle(key). Array elements are keyed by their index.
func Flatten(node Value, prefix, category string) []Token {
	var tokens []Token
	flattenInto(&tokens, node, prefix, category)
	return tokens
}

func flattenInto(tokens *[]Token, node Value, prefix, category string) {
	base := "wp--" + category + prefix + "--"

	for key, child := range node.Fields() {
		mangled := Mangle(key)

		if !child.IsComposite() {
			*tokens = append(*tokens, Token{Name: base + mangled, Value: child})
			continue
		}

		if leaf, ok := ClassifyLeaf(child); ok {
			*tokens = append(*tokens, Token{Name: base + leaf.Label(), Value: leaf.Value()})
			continue
		}

		flattenInto(tokens, child, prefix+"--"+mangled, category)
	}
}
