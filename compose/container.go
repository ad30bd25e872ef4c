package compose

import (
	"github.com/google/uuid"

	"github.com/sghaida/primobs/config"
	"github.com/sghaida/primobs/di"
	"github.com/sghaida/primobs/engine"
)

// Container exposes every piece wired by Build. It is read-only once returned.
type Container struct {
	id uuid.UUID

	tireCount   config.TireCount
	pistonCount config.PistonCount
	connStr     *config.ConnectionString
	url         *config.URL

	tires  *engine.TireBuilder
	engine *engine.EngineBuilder

	wiring *di.Service[Container]
}

// ID identifies this composition in logs. It never affects descriptions.
func (c *Container) ID() uuid.UUID { return c.id }

// TireCount returns the parsed tire count.
func (c *Container) TireCount() config.TireCount { return c.tireCount }

// PistonCount returns the parsed piston count.
func (c *Container) PistonCount() config.PistonCount { return c.pistonCount }

// ConnectionString returns the optional connection string.
func (c *Container) ConnectionString() (config.ConnectionString, bool) {
	if c.connStr == nil {
		return config.ConnectionString{}, false
	}
	return *c.connStr, true
}

// URL returns the optional url.
func (c *Container) URL() (config.URL, bool) {
	if c.url == nil {
		return config.URL{}, false
	}
	return *c.url, true
}

// Tires returns the tire builder.
func (c *Container) Tires() *engine.TireBuilder { return c.tires }

// Engine returns the engine builder, the root capability of the composition.
func (c *Container) Engine() *engine.EngineBuilder { return c.engine }

// Describe implements engine.Describer by delegating to the engine builder.
func (c *Container) Describe() string { return c.engine.Describe() }

// Has reports whether key was wired.
func (c *Container) Has(key di.DependencyKey) bool { return c.wiring.Has(key) }

// Deps returns the wired dependency keys, sorted.
func (c *Container) Deps() []di.DependencyKey { return c.wiring.Keys() }

// Dependency returns the dependency recorded under key, typed as *D.
func Dependency[D any](c *Container, key di.DependencyKey) (*D, error) {
	return di.TryGetAs[Container, D](c.wiring, key)
}
