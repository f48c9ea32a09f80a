package codec

import "gopkg.in/yaml.v3"

// YAML is a text codec backed by gopkg.in/yaml.v3.
type YAML struct{}

// Marshal encodes the value to YAML.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal decodes the YAML data into v.
//
// yaml.v3 skips UnmarshalYAML for empty and null documents, leaving v
// untouched. When v implements yaml.Unmarshaler it is always handed the
// root node, a null scalar for an empty document, so it can reject them.
func (YAML) Unmarshal(data []byte, v any) error {
	u, ok := v.(yaml.Unmarshaler)
	if !ok {
		return yaml.Unmarshal(data, v)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	return u.UnmarshalYAML(rootNode(&doc))
}

// Name returns the unique name of the codec ("yaml").
func (YAML) Name() string { return "yaml" }

func rootNode(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	if doc.Kind == 0 || doc.Kind == yaml.DocumentNode {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	}
	return doc
}
