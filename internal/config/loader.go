package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces CLI environment variables: TIDYLENS_PRECISION,
// TIDYLENS_STRICT_COVERAGE, ...
const envPrefix = "TIDYLENS_"

// configPathEnv names the env var pointing at an optional YAML config file.
const configPathEnv = "TIDYLENS_CONFIG"

// Load builds a Config by layering, low → high precedence:
//
//  1. Default()
//  2. YAML file named by TIDYLENS_CONFIG, when set
//  3. TIDYLENS_-prefixed environment variables
//
// Errors: ErrLoadFile, ErrLoadEnv (wrapped with the underlying cause),
// ErrBadPrecision on validation.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(configPathEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrLoadFile)
		}
	}

	// TIDYLENS_STRICT_COVERAGE -> strict_coverage; underscores are kept so
	// env keys line up with the koanf struct tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrLoadEnv)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrLoadFile)
	}

	if cfg.Precision < 0 || cfg.Precision > maxPrecision {
		return nil, fmt.Errorf("precision %d: %w", cfg.Precision, ErrBadPrecision)
	}

	return &cfg, nil
}
