package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names.
const EnvPrefix = "CTXLOG_"

// Load reads configuration with the following precedence (highest first):
//  1. CTXLOG_* environment variables (CTXLOG_DESTINATION_ROOT -> destination.root)
//  2. the YAML file at path, when path is not empty
//  3. built-in defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "config: load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps CTXLOG_DESTINATION_ROOT to destination.root and
// CTXLOG_MAX_SIZE_MB to max_size_mb.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "destination_"); ok {
		return "destination." + rest
	}
	return key
}
