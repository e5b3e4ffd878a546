package config

import "errors"

// Sentinel errors returned by Load. Match via errors.Is.
var (
	// ErrBadPrecision indicates a precision outside [0, 15].
	ErrBadPrecision = errors.New("config: precision must be in [0, 15]")

	// ErrLoadFile indicates the TIDYLENS_CONFIG file could not be read or parsed.
	ErrLoadFile = errors.New("config: cannot load config file")

	// ErrLoadEnv indicates the environment provider failed.
	ErrLoadEnv = errors.New("config: cannot load environment")
)
