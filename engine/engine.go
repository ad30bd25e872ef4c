package engine

import (
	"errors"

	"github.com/sghaida/primobs/config"
)

// EngineBuilder describes the whole engine: the piston line, a newline, then
// the delegated tire description.
type EngineBuilder struct {
	pistons *PistonBuilder
	tires   Describer
}

// NewEngineBuilder wires an EngineBuilder directly.
//
// It panics if tires is nil or a typed nil; use EngineFacade when wiring must be validated
// instead.
func NewEngineBuilder(tires Describer, pistons config.PistonCount) *EngineBuilder {
	if isNil(tires) {
		panic(errors.New("engine: nil tire describer"))
	}
	return &EngineBuilder{pistons: NewPistonBuilder(pistons), tires: tires}
}

// PistonCount returns the piston count the builder was constructed with.
func (b *EngineBuilder) PistonCount() config.PistonCount { return b.pistons.Count() }

// Tires returns the tire capability the builder delegates to.
func (b *EngineBuilder) Tires() Describer { return b.tires }

// Describe implements Describer.
func (b *EngineBuilder) Describe() string {
	return b.pistons.Describe() + "\n" + b.tires.Describe()
}
