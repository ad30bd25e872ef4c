package di

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or a service with a nil Val.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep is the generic nil-dependency sentinel. Injecting reports the
	// keyed NilDependencyServiceError instead, which matches it via errors.Is.
	ErrNilDep = errors.New("di: nil dependency service")

	// ErrNilBind is the generic nil-bind sentinel. Injecting reports the keyed
	// NilBindError instead, which matches it via errors.Is.
	ErrNilBind = errors.New("di: nil bind function")
)

// DependencyKey identifies a dependency stored in a Service's Deps bag.
//
// Keys are typically package-level constants:
//
//	const (
//	  KeyTireCount di.DependencyKey = "tire-count"
//	  KeyTires     di.DependencyKey = "tires"
//	)
type DependencyKey string

// DuplicateKeyError is returned when an injector attempts to register a
// dependency under a key that already exists in the target Service.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "tires"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a dependency key is not present.
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "tires" missing
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a dependency exists but is of a
// different type than requested.
type WrongTypeDependencyError struct {
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "tires" has wrong type (*config.TireCount)
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError indicates a nil dependency service for a specific key.
type NilDependencyServiceError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// Is makes errors.Is(err, ErrNilDep) hold.
func (e NilDependencyServiceError) Is(target error) bool { return target == ErrNilDep }

// NilBindError indicates a nil bind function for a specific key.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Is makes errors.Is(err, ErrNilBind) hold.
func (e NilBindError) Is(target error) bool { return target == ErrNilBind }

// Service holds a constructed value plus the dependencies recorded while wiring it.
//
// Deps is intentionally loose (map[DependencyKey]any); typed retrieval goes
// through TryGetAs.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value pointer.
func (s *Service[T]) Value() *T { return s.Val }

// Injector mutates a Service in place and returns an error if wiring fails.
type Injector[T any] func(*Service[T]) error

// With applies a single injector. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(deps ...Injector[T]) (*Service[T], error) {
	for _, inj := range deps {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting builds an Injector that records dep under key and binds it into
// the target.
//
// The returned injector fails with ErrNilTarget, NilDependencyServiceError,
// NilBindError or DuplicateKeyError; on failure nothing is recorded or bound.
func Injecting[T any, D any](
	key DependencyKey,
	dep *Service[D],
	bind func(target *T, dependency *D),
) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		d := dep.Val
		s.Deps[key] = d
		bind(s.Val, d)
		return nil
	}
}

// Has reports whether a dependency exists for the key (regardless of type).
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// Keys returns the recorded dependency keys, sorted.
func (s *Service[T]) Keys() []DependencyKey {
	if s == nil {
		return nil
	}
	out := make([]DependencyKey, 0, len(s.Deps))
	for k := range s.Deps {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TryGetAs returns the dependency typed as *D, or a MissingDependencyError /
// WrongTypeDependencyError.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}
