package themejson

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes v as a YAML node tree, keeping field order and number literals
func (v Value) MarshalYAML() (any, error) {
	return v.node(), nil
}

func (v Value) node() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		tag := "!!int"
		if _, err := strconv.ParseInt(v.text, 10, 64); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range v.arr {
			n.Content = append(n.Content, elem.node())
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for key, field := range v.Fields() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				field.node())
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
