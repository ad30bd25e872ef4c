package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// HCLFileSource reads top-level attributes from an HCL file:
//
//	TireCount   = 4
//	PistonCount = "6"
//
// Numbers and booleans are rendered to their string form; blocks are rejected.
type HCLFileSource struct {
	Path string
}

// Load implements Source.
func (h HCLFileSource) Load() (Values, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(h.Path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", h.Path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to read attributes of %s: %w", h.Path, diags)
	}

	out := make(Values, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("config: failed to evaluate %s in %s: %w", name, h.Path, diags)
		}
		raw, err := ctyToRaw(val)
		if err != nil {
			return nil, fmt.Errorf("config: attribute %s in %s: %w", name, h.Path, err)
		}
		out[name] = raw
	}
	return out, nil
}

func ctyToRaw(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("value is null")
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	if !val.Type().IsPrimitiveType() {
		return "", fmt.Errorf("expected a string, number or bool, got %s", val.Type().FriendlyName())
	}
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return s.AsString(), nil
}
