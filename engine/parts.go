package engine

import (
	"reflect"
	"strings"

	"github.com/sghaida/primobs/config"
)

// Labels and tokens used in descriptions.
const (
	TireLabel   = "Tires: "
	TireToken   = "()"
	PistonLabel = "Pistons: "
	PistonToken = "||"
)

// Describer produces a textual description of a part.
type Describer interface {
	Describe() string
}

// TireBuilder describes the tires: TireLabel followed by one TireToken per tire.
type TireBuilder struct {
	count config.TireCount
}

// NewTireBuilder returns a TireBuilder for count tires.
func NewTireBuilder(count config.TireCount) *TireBuilder {
	return &TireBuilder{count: count}
}

// Count returns the tire count the builder was constructed with.
func (b *TireBuilder) Count() config.TireCount { return b.count }

// Describe implements Describer.
func (b *TireBuilder) Describe() string {
	return repeat(TireLabel, TireToken, b.count.Value())
}

// PistonBuilder describes the pistons: PistonLabel followed by one PistonToken per piston.
type PistonBuilder struct {
	count config.PistonCount
}

// NewPistonBuilder returns a PistonBuilder for count pistons.
func NewPistonBuilder(count config.PistonCount) *PistonBuilder {
	return &PistonBuilder{count: count}
}

// Count returns the piston count the builder was constructed with.
func (b *PistonBuilder) Count() config.PistonCount { return b.count }

// Describe implements Describer.
func (b *PistonBuilder) Describe() string {
	return repeat(PistonLabel, PistonToken, b.count.Value())
}

func repeat(label, token string, n int) string {
	var sb strings.Builder
	sb.Grow(len(label) + len(token)*n)
	sb.WriteString(label)
	for i := 0; i < n; i++ {
		sb.WriteString(token)
	}
	return sb.String()
}

// isNil reports whether d is nil or an interface holding a nil pointer, map,
// slice, func or chan.
func isNil(d Describer) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
