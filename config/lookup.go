package config

import "sort"

// Well-known configuration keys.
const (
	KeyTireCount        = "TireCount"
	KeyPistonCount      = "PistonCount"
	KeyConnectionString = "ConnectionString"
	KeyURL              = "Url"
)

// Keys lists every well-known key, required ones first.
var Keys = []string{KeyTireCount, KeyPistonCount, KeyConnectionString, KeyURL}

// Values is a flat view of raw configuration input, key -> raw string.
type Values map[string]string

// Lookup returns the raw value for key.
func (v Values) Lookup(key string) (string, bool) {
	raw, ok := v[key]
	return raw, ok
}

// Names returns the keys present in v, sorted.
func (v Values) Names() []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// TireCount parses the required TireCount key.
func (v Values) TireCount() (TireCount, error) {
	raw, ok := v[KeyTireCount]
	if !ok {
		return TireCount{}, MissingKeyError{Key: KeyTireCount}
	}
	tc, err := ParseTireCount(raw)
	if err != nil {
		return TireCount{}, withKey(err, KeyTireCount)
	}
	return tc, nil
}

// PistonCount parses the required PistonCount key.
func (v Values) PistonCount() (PistonCount, error) {
	raw, ok := v[KeyPistonCount]
	if !ok {
		return PistonCount{}, MissingKeyError{Key: KeyPistonCount}
	}
	pc, err := ParsePistonCount(raw)
	if err != nil {
		return PistonCount{}, withKey(err, KeyPistonCount)
	}
	return pc, nil
}

// ConnectionString parses the optional ConnectionString key.
// ok is false when the key is absent.
func (v Values) ConnectionString() (cs ConnectionString, ok bool, err error) {
	raw, ok := v[KeyConnectionString]
	if !ok {
		return ConnectionString{}, false, nil
	}
	cs, err = ParseConnectionString(raw)
	if err != nil {
		return ConnectionString{}, false, withKey(err, KeyConnectionString)
	}
	return cs, true, nil
}

// URL parses the optional Url key.
// ok is false when the key is absent.
func (v Values) URL() (u URL, ok bool, err error) {
	raw, ok := v[KeyURL]
	if !ok {
		return URL{}, false, nil
	}
	u, err = ParseURL(raw)
	if err != nil {
		return URL{}, false, withKey(err, KeyURL)
	}
	return u, true, nil
}
