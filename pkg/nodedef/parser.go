package nodedef

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the on-disk shape of a node definition file
type yamlDocument struct {
	Version   string       `yaml:"version"`
	NodeTypes []Definition `yaml:"node_types"`
}

// Parse parses node definitions from YAML bytes
func Parse(yamlBytes []byte) ([]Definition, error) {
	if len(yamlBytes) == 0 {
		return nil, errors.New("empty YAML input")
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(yamlBytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Version == "" {
		return nil, errors.New("missing required field: version")
	}
	if len(doc.NodeTypes) == 0 {
		return nil, errors.New("missing required field: node_types")
	}

	seen := make(map[string]bool, len(doc.NodeTypes))
	for i := range doc.NodeTypes {
		def := &doc.NodeTypes[i]
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("node type %d: %w", i, err)
		}
		if seen[def.Name.String()] {
			return nil, fmt.Errorf("duplicate node type: %s", def.Name)
		}
		seen[def.Name.String()] = true
	}

	return doc.NodeTypes, nil
}

// ParseFile parses node definitions from a YAML file
func ParseFile(filePath string) ([]Definition, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Marshal renders definitions as a node definition YAML document.
func Marshal(defs []Definition) ([]byte, error) {
	return yaml.Marshal(yamlDocument{Version: "1.0", NodeTypes: defs})
}
