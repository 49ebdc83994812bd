package component

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeValues parses a YAML mapping into Values. An empty document yields
// empty Values.
//
//	values, err := component.DecodeValues([]byte("color: red\nsize: 3\n"))
//	err = component.AssignProperties(badge, values, "color", "size")
func DecodeValues(data []byte) (Values, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse values: %w", err)
	}
	return valuesOf(raw), nil
}

// ReadValues is DecodeValues over the first YAML document in r.
func ReadValues(r io.Reader) (Values, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse values: %w", err)
	}
	return valuesOf(raw), nil
}

func valuesOf(raw map[string]any) Values {
	values := make(Values, len(raw))
	for k, v := range raw {
		values[Key(k)] = v
	}
	return values
}
