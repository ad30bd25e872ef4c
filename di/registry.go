package di

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry provides optional dependencies at build time.
//
// It is read-only, side effect free and consulted only while composing:
//
//	val, ok, err := reg.Resolve(cfg, "engine.logger")
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is an in-memory Registry keyed by name. It ignores cfg and is
// safe for concurrent use.
type MapRegistry struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewMapRegistry returns an empty registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores val under key and returns the registry for chaining.
// A nil val withdraws the key.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if val == nil {
		delete(r.items, key)
		return r
	}
	r.items[key] = val
	return r
}

// Keys returns the provided keys, sorted.
func (r *MapRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Resolve implements Registry. A panic inside the lookup (a nil registry, for
// instance) is reported as ErrRegistryPanic.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val, ok = nil, false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok = r.items[key]
	return val, ok, nil
}

// ResolveAs resolves key from reg and asserts the result to V.
//
// A nil registry, a missing key and a nil value all report ok=false with no
// error. A value of another type is a WrongTypeDependencyError.
func ResolveAs[V any](reg Registry, cfg any, key string) (V, bool, error) {
	var zero V
	if reg == nil {
		return zero, false, nil
	}
	raw, ok, err := reg.Resolve(cfg, key)
	if err != nil {
		return zero, false, err
	}
	if !ok || raw == nil {
		return zero, false, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, false, WrongTypeDependencyError{
			Key:     DependencyKey(key),
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return v, true, nil
}
