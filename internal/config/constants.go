package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.1.0"
)

// stream constants
const (
	// DefaultStreamBuffer is the capacity of a subscription's signal channel
	DefaultStreamBuffer = 64

	// DefaultFailfast controls whether start failures are raised synchronously
	DefaultFailfast = true
)

// process constants
const (
	ShutdownTimeout = 5 * time.Second
)

// stats constants
const (
	DefaultStatsInterval = 500 * time.Millisecond
)
