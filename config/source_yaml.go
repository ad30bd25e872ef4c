package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLFileSource reads a flat YAML mapping of scalars:
//
//	TireCount: 4
//	PistonCount: 6
//	ConnectionString: "Server=db;Database=engine"
type YAMLFileSource struct {
	Path string
}

// Load implements Source.
func (y YAMLFileSource) Load() (Values, error) {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read YAML file %s: %w", y.Path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML file %s: %w", y.Path, err)
	}

	out := make(Values, len(doc))
	for name, v := range doc {
		raw, err := scalarToRaw(v)
		if err != nil {
			return nil, fmt.Errorf("config: key %s in %s: %w", name, y.Path, err)
		}
		out[name] = raw
	}
	return out, nil
}

func scalarToRaw(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}
