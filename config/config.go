package config

import "time"

type NET struct {
	// ReadBufferSize is the size in bytes of the per-connection buffer the
	// cursor reads the socket through.
	ReadBufferSize int
	// ReadTimeout bounds how long a single request head may take to arrive.
	// The core itself knows nothing about time; the deadline is armed on the
	// socket by the connection glue.
	ReadTimeout time.Duration
	// AcceptLoopInterruptPeriod controls how often the Accept() call is
	// interrupted in order to check whether it's time to stop.
	AcceptLoopInterruptPeriod time.Duration
}

// Config holds the few knobs the server glue exposes. Always start from
// Default() and modify what's needed.
type Config struct {
	NET NET
}

// Default returns a config with well-balanced defaults.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
