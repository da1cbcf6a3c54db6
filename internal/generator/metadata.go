package generator

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samvera-labs/workgen/internal/work"
)

// attributesPlaceholder is the line in the metadata template replaced by
// the attribute mapping.
const attributesPlaceholder = "attributes: {}"

// attributesYAML renders attrs as an "attributes:" mapping, keeping input
// order. A repeated name keeps its first position and its last type.
func attributesYAML(attrs []work.Attribute) ([]string, error) {
	types := make(map[string]string, len(attrs))
	var order []string
	for _, a := range attrs {
		if _, seen := types[a.Name]; !seen {
			order = append(order, a.Name)
		}
		types[a.Name] = a.Type
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range order {
		mapping.Content = append(mapping.Content,
			strNode(name),
			&yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{strNode("type"), strNode(types[name])}},
		)
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{strNode("attributes"), mapping}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
