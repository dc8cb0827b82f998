package taxonomy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions decodes a YAML list of agent error definitions from r and
// validates each one. The expected document is a sequence of mappings with
// the keys code, category, name, description, retryable, and severity.
func LoadDefinitions(r io.Reader) ([]AgentError, error) {
	var defs []AgentError
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("definition %d (code %d): %w", i, def.Code, err)
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("definition %d (code %d): unknown category %q", i, def.Code, def.Category)
		}
	}
	return defs, nil
}

// LoadDefinitionsFile reads a YAML definition file from path.
func LoadDefinitionsFile(path string) ([]AgentError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions file: %w", err)
	}
	defer f.Close()
	return LoadDefinitions(f)
}
