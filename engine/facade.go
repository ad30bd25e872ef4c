package engine

import (
	"fmt"

	"github.com/sghaida/primobs/config"
)

// EngineFacade wires an EngineBuilder step by step and validates the wiring on
// Build:
//
//	eng, err := engine.NewEngineFacade().
//		InjectTires(tires).
//		InjectPistonCount(pistons).
//		Build()
//
// Build hands out a fresh EngineBuilder, so injecting again after Build never
// changes a builder that is already in use.
type EngineFacade struct {
	svc EngineBuilder

	hasTires       bool
	hasPistonCount bool
}

// NewEngineFacade returns an empty facade.
func NewEngineFacade() *EngineFacade {
	return &EngineFacade{}
}

// InjectTires sets the tire capability. A nil describer, including a typed nil
// such as (*TireBuilder)(nil), leaves the dep unwired.
func (b *EngineFacade) InjectTires(dep Describer) *EngineFacade {
	if isNil(dep) {
		return b
	}
	b.svc.tires = dep
	b.hasTires = true
	return b
}

// InjectPistonCount sets the piston count.
func (b *EngineFacade) InjectPistonCount(dep config.PistonCount) *EngineFacade {
	b.svc.pistons = NewPistonBuilder(dep)
	b.hasPistonCount = true
	return b
}

// Build validates required deps and returns the wired EngineBuilder.
func (b *EngineFacade) Build() (*EngineBuilder, error) {
	if !b.hasTires {
		return nil, fmt.Errorf("EngineFacade not wired: missing required dep Tires")
	}
	if !b.hasPistonCount {
		return nil, fmt.Errorf("EngineFacade not wired: missing required dep PistonCount")
	}
	out := b.svc
	return &out, nil
}

// MustBuild is like Build but panics on incomplete wiring.
func (b *EngineFacade) MustBuild() *EngineBuilder {
	svc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return svc
}
