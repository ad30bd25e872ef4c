// Package primobs composes typed configuration into an engine description.
//
// The repository is an exercise in avoiding primitive obsession: counts and
// strings read from configuration are wrapped in distinct types before they
// reach any builder, and the object graph is wired explicitly in one place.
//
// Layout:
//   - config: typed values (TireCount, PistonCount, ConnectionString, URL) and
//     layered raw sources (map, environment, HCL, YAML)
//   - engine: part builders behind the Describer capability, plus EngineFacade
//   - di: dependency bag, injectors and optional-dependency registry
//   - compose: the composition root (Compose / Build)
//   - cmd/engine: the command-line entry point
//   - examples/manual: the same graph wired by hand
package primobs
