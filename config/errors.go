package config

import (
	"errors"
	"strconv"
)

var (
	// ErrEmpty is the cause of a ParseError for blank input.
	ErrEmpty = errors.New("value is empty")

	// ErrNotInteger is the cause of a ParseError for input that is not a base-10 integer.
	ErrNotInteger = errors.New("not a base-10 integer")

	// ErrNegative is the cause of a ParseError for counts below zero.
	ErrNegative = errors.New("must not be negative")

	// ErrTooLarge is the cause of a ParseError for counts that overflow int.
	ErrTooLarge = errors.New("out of range for int")

	// ErrNotAbsoluteURL is the cause of a ParseError for URLs without scheme or host.
	ErrNotAbsoluteURL = errors.New("not an absolute url")
)

// MissingKeyError is returned when a required configuration key is absent.
type MissingKeyError struct{ Key string }

// Error implements the error interface.
func (e MissingKeyError) Error() string {
	// Example: config: required key "TireCount" missing
	return "config: required key " + strconv.Quote(e.Key) + " missing"
}

// ParseError is returned when a configuration value is present but invalid.
//
// Key is empty when the value was parsed outside of a Values lookup.
// Err is one of the package sentinels (ErrEmpty, ErrNotInteger, ...).
type ParseError struct {
	Key string
	Raw string
	Err error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	// Example: config: key "TireCount" value "abc": not a base-10 integer
	msg := "config: "
	if e.Key != "" {
		msg += "key " + strconv.Quote(e.Key) + " "
	}
	msg += "value " + strconv.Quote(e.Raw)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e ParseError) Unwrap() error { return e.Err }

// withKey attaches key context to a ParseError, leaving other errors untouched.
func withKey(err error, key string) error {
	var pe ParseError
	if errors.As(err, &pe) {
		pe.Key = key
		return pe
	}
	return err
}
