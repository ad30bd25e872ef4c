// Package compose is the composition root: it turns raw configuration into a
// fully wired engine.
//
// Composition is fail-fast. Every configuration value is parsed before any
// builder is constructed, and any MissingKeyError or ParseError is returned
// to the caller with no partial result:
//
//	eng, err := compose.Compose(map[string]string{"TireCount": "4", "PistonCount": "6"})
//	if err != nil {
//		// errors.As(err, &config.MissingKeyError{}) / errors.As(err, &config.ParseError{})
//	}
//	fmt.Println(eng.Describe())
//
// Build returns the whole Container when callers need more than the engine.
package compose

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sghaida/primobs/config"
	"github.com/sghaida/primobs/di"
	"github.com/sghaida/primobs/engine"
	"github.com/sghaida/primobs/internal/logging"
)

// Dependency keys recorded in the container's wiring bag.
const (
	DepTireCount        di.DependencyKey = "tire-count"
	DepPistonCount      di.DependencyKey = "piston-count"
	DepConnectionString di.DependencyKey = "connection-string"
	DepURL              di.DependencyKey = "url"
	DepTires            di.DependencyKey = "tires"
	DepEngine           di.DependencyKey = "engine"
)

// RegLogger is the registry key for an optional *slog.Logger.
const RegLogger = "engine.logger"

// Option configures Build.
type Option func(*options)

type options struct {
	registry di.Registry
}

// WithRegistry supplies optional dependencies (see RegLogger).
func WithRegistry(reg di.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// Compose wires the engine from raw and returns it as a Describer.
func Compose(raw map[string]string) (engine.Describer, error) {
	c, err := Build(raw)
	if err != nil {
		return nil, err
	}
	return c.Engine(), nil
}

// Build is BuildContext with a background context.
func Build(raw map[string]string, opts ...Option) (*Container, error) {
	return BuildContext(context.Background(), raw, opts...)
}

// BuildContext parses raw, wires every builder and returns the Container.
//
// The logger comes from the registry (RegLogger) if one is supplied, otherwise
// from ctx.
func BuildContext(ctx context.Context, raw map[string]string, opts ...Option) (*Container, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	values := config.Values(raw)

	logger, ok, err := di.ResolveAs[*slog.Logger](o.registry, values, RegLogger)
	if err != nil {
		return nil, fmt.Errorf("compose: resolving %s: %w", RegLogger, err)
	}
	if !ok {
		logger = logging.FromContext(ctx)
	}

	// Parse everything first so no builder exists on failure.
	tireCount, err := values.TireCount()
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	pistonCount, err := values.PistonCount()
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	connStr, hasConnStr, err := values.ConnectionString()
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	u, hasURL, err := values.URL()
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	tires := di.Init(func() *engine.TireBuilder { return engine.NewTireBuilder(tireCount) })
	eng, err := engine.NewEngineFacade().
		InjectTires(tires.Value()).
		InjectPistonCount(pistonCount).
		Build()
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	root := di.Init(func() *Container { return &Container{id: uuid.New()} })

	injectors := []di.Injector[Container]{
		di.Injecting(DepTireCount, valueService(tireCount), func(c *Container, v *config.TireCount) { c.tireCount = *v }),
		di.Injecting(DepPistonCount, valueService(pistonCount), func(c *Container, v *config.PistonCount) { c.pistonCount = *v }),
		di.Injecting(DepTires, tires, func(c *Container, t *engine.TireBuilder) { c.tires = t }),
		di.Injecting(DepEngine, di.Init(func() *engine.EngineBuilder { return eng }), func(c *Container, e *engine.EngineBuilder) { c.engine = e }),
	}
	if hasConnStr {
		injectors = append(injectors,
			di.Injecting(DepConnectionString, valueService(connStr), func(c *Container, v *config.ConnectionString) { c.connStr = v }))
	}
	if hasURL {
		injectors = append(injectors,
			di.Injecting(DepURL, valueService(u), func(c *Container, v *config.URL) { c.url = v }))
	}

	if _, err := root.WithAll(injectors...); err != nil {
		return nil, fmt.Errorf("compose: wiring container: %w", err)
	}

	c := root.Value()
	c.wiring = root

	logger.Debug("Engine composed.",
		"container", c.id.String(),
		"tires", tireCount.Value(),
		"pistons", pistonCount.Value(),
		"deps", root.Keys(),
	)
	return c, nil
}

func valueService[V any](v V) *di.Service[V] {
	return di.Init(func() *V { return &v })
}
