// Package config turns raw configuration strings into typed values.
//
// Every primitive the engine cares about gets its own named type:
//
//   - TireCount and PistonCount wrap non-negative integers
//   - ConnectionString wraps a non-blank string
//   - URL wraps an absolute URL
//
// Values are built with parse-or-fail constructors (ParseTireCount, ...) and are
// read through explicit accessors (Value). There are no conversions between the
// types, so a TireCount can never be passed where a PistonCount is expected.
//
// Raw input arrives as Values, a flat key/value view assembled from one or more
// Source layers (map, environment, HCL file, YAML file):
//
//	vals, err := config.Load(
//		config.YAMLFileSource{Path: "engine.yaml"},
//		config.EnvSource{Prefix: "ENGINE_"},
//	)
//	if err != nil {
//		// handle unreadable source
//	}
//	tires, err := vals.TireCount() // MissingKeyError or ParseError on failure
package config
