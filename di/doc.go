// Package di provides the explicit wiring helpers used by the composition root.
//
// There is no container and no reflection-based injection. Instead:
//
//   - Service[T] holds a constructed value plus a bag of recorded dependencies
//     (Deps), so tests can ask what was injected under which key.
//   - Injecting builds an Injector that records a dependency and binds it into
//     the target through a plain function. Wiring mistakes (nil services,
//     duplicate keys) come back as typed errors.
//   - Registry supplies optional dependencies at build time; ResolveAs adds a
//     type check on top of it.
//
// Example:
//
//	const KeyTires di.DependencyKey = "tires"
//
//	root := di.Init(func() *Graph { return &Graph{} })
//	tires := di.Init(func() *engine.TireBuilder { return engine.NewTireBuilder(tc) })
//
//	_, err := root.WithAll(
//		di.Injecting(KeyTires, tires, func(g *Graph, t *engine.TireBuilder) { g.Tires = t }),
//	)
//
// Import
//
//	"github.com/sghaida/primobs/di"
package di
