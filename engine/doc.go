// Package engine holds the part builders that render an engine description.
//
// Every builder implements Describer. The engine builder depends on the
// Describer capability for its tires, not on the concrete TireBuilder, so any
// tire description can be plugged in:
//
//	tires := engine.NewTireBuilder(config.MustTireCount(4))
//	eng := engine.NewEngineBuilder(tires, config.MustPistonCount(6))
//	fmt.Println(eng.Describe())
//	// Pistons: ||||||
//	// Tires: ()()()()
//
// Builders are immutable after construction; Describe is deterministic and safe
// for concurrent use.
package engine
