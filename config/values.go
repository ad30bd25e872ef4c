package config

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// TireCount is the number of tires on the engine.
type TireCount struct{ n int }

// PistonCount is the number of pistons in the engine.
type PistonCount struct{ n int }

// ConnectionString is an opaque, non-blank connection string.
type ConnectionString struct{ s string }

// URL is an absolute URL (scheme and host present).
type URL struct{ u url.URL }

// ParseTireCount parses raw into a TireCount.
func ParseTireCount(raw string) (TireCount, error) {
	n, err := parseCount(raw)
	if err != nil {
		return TireCount{}, err
	}
	return TireCount{n: n}, nil
}

// NewTireCount validates n and wraps it.
func NewTireCount(n int) (TireCount, error) {
	if err := checkCount(n, strconv.Itoa(n)); err != nil {
		return TireCount{}, err
	}
	return TireCount{n: n}, nil
}

// MustTireCount is like NewTireCount but panics on invalid input.
func MustTireCount(n int) TireCount {
	tc, err := NewTireCount(n)
	if err != nil {
		panic(err)
	}
	return tc
}

// Value returns the count.
func (c TireCount) Value() int { return c.n }

// String implements fmt.Stringer.
func (c TireCount) String() string { return strconv.Itoa(c.n) }

// ParsePistonCount parses raw into a PistonCount.
func ParsePistonCount(raw string) (PistonCount, error) {
	n, err := parseCount(raw)
	if err != nil {
		return PistonCount{}, err
	}
	return PistonCount{n: n}, nil
}

// NewPistonCount validates n and wraps it.
func NewPistonCount(n int) (PistonCount, error) {
	if err := checkCount(n, strconv.Itoa(n)); err != nil {
		return PistonCount{}, err
	}
	return PistonCount{n: n}, nil
}

// MustPistonCount is like NewPistonCount but panics on invalid input.
func MustPistonCount(n int) PistonCount {
	pc, err := NewPistonCount(n)
	if err != nil {
		panic(err)
	}
	return pc
}

// Value returns the count.
func (c PistonCount) Value() int { return c.n }

// String implements fmt.Stringer.
func (c PistonCount) String() string { return strconv.Itoa(c.n) }

// ParseConnectionString trims raw and rejects blank input.
func ParseConnectionString(raw string) (ConnectionString, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ConnectionString{}, ParseError{Raw: raw, Err: ErrEmpty}
	}
	return ConnectionString{s: s}, nil
}

// Value returns the connection string.
func (c ConnectionString) Value() string { return c.s }

// ParseURL parses raw and requires both a scheme and a host.
func ParseURL(raw string) (URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return URL{}, ParseError{Raw: raw, Err: ErrEmpty}
	}
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, ParseError{Raw: raw, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return URL{}, ParseError{Raw: raw, Err: ErrNotAbsoluteURL}
	}
	return URL{u: *u}, nil
}

// Value returns a copy of the parsed URL.
func (u URL) Value() *url.URL {
	cp := u.u
	return &cp
}

// String returns the URL in its canonical form.
func (u URL) String() string { return u.u.String() }

func parseCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ParseError{Raw: raw, Err: ErrEmpty}
	}
	// Atoi accepts a leading '+', counts do not.
	if s[0] == '+' {
		return 0, ParseError{Raw: raw, Err: ErrNotInteger}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, ParseError{Raw: raw, Err: ErrTooLarge}
		}
		return 0, ParseError{Raw: raw, Err: ErrNotInteger}
	}
	if err := checkCount(n, raw); err != nil {
		return 0, err
	}
	return n, nil
}

func checkCount(n int, raw string) error {
	if n < 0 {
		return ParseError{Raw: raw, Err: ErrNegative}
	}
	return nil
}
