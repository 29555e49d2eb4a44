package fcmat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, so a Material can be passed
// directly to yaml.Marshal. The returned node preserves the document's
// section and key order, and every leaf is emitted double-quoted to
// keep values visibly string-typed.
func (m *Material) MarshalYAML() (any, error) {
	return m.yamlNode()
}

func (m *Material) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, n := range m.All() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var valNode *yaml.Node
		switch n := n.(type) {
		case Value:
			valNode = &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: string(n),
				Style: yaml.DoubleQuotedStyle,
			}
		case *Material:
			var err error
			valNode, err = n.yamlNode()
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("fcmat: unsupported node type %T for key %q", n, key)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
