// Package input decodes UTF-8 YAML or JSON text into the generic mapping the
// processor consumes. YAML 1.2 is a superset of JSON, so one decoder covers
// both dialects.
package input

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"cvkit/internal/model"
)

// Decode parses a document into its generic mapping form. The cv.sections
// mapping is decoded into model.SectionsInput so the section order of the
// source document survives; plain Go maps would lose it.
func Decode(data []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return map[string]any{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("the input should be a mapping of cv and design")
	}

	out := map[string]any{}
	for i := 0; i < len(doc.Content); i += 2 {
		key, valueNode := doc.Content[i].Value, doc.Content[i+1]
		if key == "cv" && valueNode.Kind == yaml.MappingNode {
			cv, err := decodeCV(valueNode)
			if err != nil {
				return nil, err
			}
			out[key] = cv
			continue
		}
		value, err := decodeNode(valueNode)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

func decodeCV(n *yaml.Node) (map[string]any, error) {
	cv := map[string]any{}
	for i := 0; i < len(n.Content); i += 2 {
		key, valueNode := n.Content[i].Value, n.Content[i+1]
		if key == "sections" && valueNode.Kind == yaml.MappingNode {
			sections, err := decodeSections(valueNode)
			if err != nil {
				return nil, err
			}
			cv[key] = sections
			continue
		}
		value, err := decodeNode(valueNode)
		if err != nil {
			return nil, err
		}
		cv[key] = value
	}
	return cv, nil
}

func decodeSections(n *yaml.Node) (model.SectionsInput, error) {
	sections := make(model.SectionsInput, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		key, valueNode := n.Content[i].Value, n.Content[i+1]
		value, err := decodeNode(valueNode)
		if err != nil {
			return nil, err
		}
		entries, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("section %q should be a list of entries", key)
		}
		sections = append(sections, model.NamedEntryList{Key: key, Entries: entries})
	}
	return sections, nil
}

func decodeNode(n *yaml.Node) (any, error) {
	// Full dates like 2004-06-01 resolve to the YAML timestamp type; the data
	// model wants them as the literal string they were written as.
	if n.Kind == yaml.ScalarNode && n.Tag == "!!timestamp" {
		return n.Value, nil
	}
	if n.Kind == yaml.SequenceNode {
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	if n.Kind == yaml.MappingNode {
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			v, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
