package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source produces one layer of raw configuration.
type Source interface {
	Load() (Values, error)
}

// Load merges sources in order. Keys from later sources override earlier ones.
func Load(sources ...Source) (Values, error) {
	out := Values{}
	for _, src := range sources {
		if src == nil {
			continue
		}
		layer, err := src.Load()
		if err != nil {
			return nil, err
		}
		for k, v := range layer {
			out[k] = v
		}
	}
	return out, nil
}

// MapSource is a literal layer, mostly useful for defaults and tests.
type MapSource map[string]string

// Load implements Source. The returned Values is a copy.
func (m MapSource) Load() (Values, error) {
	out := make(Values, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

// EnvSource reads <Prefix><Key> for each key from the environment.
//
// Empty variables are treated as unset.
type EnvSource struct {
	Prefix string

	// Keys defaults to the package Keys.
	Keys []string

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load implements Source.
func (e EnvSource) Load() (Values, error) {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	keys := e.Keys
	if len(keys) == 0 {
		keys = Keys
	}

	out := Values{}
	for _, k := range keys {
		if v, ok := lookup(e.Prefix + k); ok && v != "" {
			out[k] = v
		}
	}
	return out, nil
}

// FileSource picks a file-backed Source by extension (.hcl, .yaml, .yml).
func FileSource(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return HCLFileSource{Path: path}, nil
	case ".yaml", ".yml":
		return YAMLFileSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("config: unsupported config file extension %q (want .hcl, .yaml or .yml)", filepath.Ext(path))
	}
}
