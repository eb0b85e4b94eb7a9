package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving durations stored as integers.
type TimeConfig interface {
	// GetMillisecond retrieves the value associated with key as milliseconds.
	GetMillisecond(key string) time.Duration

	// GetSecond retrieves the value associated with key as seconds.
	GetSecond(key string) time.Duration

	// GetHour retrieves the value associated with key as hours.
	GetHour(key string) time.Duration
}

// Config defines a set of methods for retrieving configuration values of various types.
// Missing keys resolve to the zero value of the requested type unless a default
// was registered for them.
type Config interface {
	io.Closer
	TimeConfig

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetArray retrieves a comma separated value as a slice of trimmed,
	// non-empty strings.
	GetArray(key string) []string
}
