package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path and parses it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses a YAML document whose top level maps group names to mappings
// of device key to display label:
//
//	Kuchnia:
//	  lamp1: "Lampka kuchenna"
//	Wentylatory: {}
//
// Group and device order follow the document.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// An empty file decodes to a zero node
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyConfig
	}

	root := resolve(doc.Content[0])
	if isFalsy(root) {
		return nil, ErrEmptyConfig
	}
	if root.Kind != yaml.MappingNode {
		return nil, formatError(root.Line, "top level must be a mapping of groups, got %s", kindName(root))
	}

	cfg := &Config{Groups: make([]Group, 0, len(root.Content)/2)}
	owners := make(map[string]string)
	groupLines := make(map[string]int)

	for i := 0; i+1 < len(root.Content); i += 2 {
		nameNode, value := resolve(root.Content[i]), resolve(root.Content[i+1])
		if nameNode.Kind != yaml.ScalarNode {
			return nil, formatError(nameNode.Line, "group name must be a scalar, got %s", kindName(nameNode))
		}

		if first, seen := groupLines[nameNode.Value]; seen {
			return nil, &DuplicateGroupError{Name: nameNode.Value, FirstLine: first, Line: nameNode.Line}
		}
		groupLines[nameNode.Value] = nameNode.Line

		group := Group{Name: nameNode.Value}

		// Falsy group values are normalized to an empty group
		if !isFalsy(value) {
			if value.Kind != yaml.MappingNode {
				return nil, formatError(value.Line, "group %q must be a mapping of devices, got %s", group.Name, kindName(value))
			}

			devices, err := parseDevices(group.Name, value, owners)
			if err != nil {
				return nil, err
			}
			group.Devices = devices
		}

		cfg.Groups = append(cfg.Groups, group)
	}

	return cfg, nil
}

// parseDevices walks a group mapping. owners records which group claimed
// each key so duplicates can be reported with both locations.
func parseDevices(groupName string, node *yaml.Node, owners map[string]string) ([]Device, error) {
	devices := make([]Device, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, labelNode := resolve(node.Content[i]), resolve(node.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, formatError(keyNode.Line, "device key in group %q must be a scalar, got %s", groupName, kindName(keyNode))
		}

		key := keyNode.Value
		if key == "" || keyNode.ShortTag() == "!!null" {
			return nil, formatError(keyNode.Line, "empty device key in group %q", groupName)
		}

		if first, exists := owners[key]; exists {
			return nil, &DuplicateKeyError{
				Key:         key,
				FirstGroup:  first,
				SecondGroup: groupName,
				Line:        keyNode.Line,
			}
		}
		owners[key] = groupName

		if labelNode.Kind != yaml.ScalarNode {
			return nil, formatError(labelNode.Line, "label for device %q must be a scalar, got %s", key, kindName(labelNode))
		}

		label := labelNode.Value
		if labelNode.ShortTag() == "!!null" || label == "" {
			label = key
		}

		devices = append(devices, Device{Key: key, Label: label})
	}

	return devices, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// isFalsy reports whether a node holds an empty or false-like value:
// null, false, zero, the empty string, or an empty mapping or sequence.
func isFalsy(n *yaml.Node) bool {
	n = resolve(n)
	if n == nil {
		return true
	}

	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(n.Content) == 0

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return true
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err == nil {
				return !b
			}
		case "!!int":
			var v int64
			if err := n.Decode(&v); err == nil {
				return v == 0
			}
		case "!!float":
			var f float64
			if err := n.Decode(&f); err == nil {
				return f == 0
			}
		case "!!str":
			return n.Value == ""
		}
	}

	return false
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + n.ShortTag()
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", n.Kind)
	}
}
