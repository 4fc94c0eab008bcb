// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types on top of built-in defaults, and validates the
// result so the application fails fast on bad configuration.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app refuses to start with a broken config.
//   - Provide defaults for every block, including the known person IDs.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: loads a `.env` file, if present, into the
	// process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the prefix PEOPLE_. The prefix is removed and
	the rest is lowercased; "." separates nested keys:

	  PEOPLE_SERVER.PORT          -> server.port        -> Config.Server.Port
	  PEOPLE_REGISTRY.KNOWN_IDS   -> registry.known_ids -> Config.Registry.KnownIDs

	List values are comma separated: PEOPLE_REGISTRY.KNOWN_IDS=1,2,3
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "PEOPLE_"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Registry      RegistryConfig       `koanf:"registry" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps request bodies, uploads included ("2M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// RegistryConfig describes the in-memory stand-in for a person table.
type RegistryConfig struct {
	// KnownIDs are the person identifiers that exist. Read-only once loaded.
	KnownIDs []int `koanf:"known_ids" validate:"required,min=1,dive,gt=0"`
}

// DefaultConfig returns the configuration used when no env var overrides
// a value.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "2M",
			RateLimit:          0,
		},
		Registry: RegistryConfig{
			KnownIDs: []int{1, 2, 3, 4, 5},
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns it.
//
// Behavior summary:
//   - Loads env vars with prefix PEOPLE_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config, splitting comma separated lists
//   - Validates struct tags and the observability block
//   - Forces observability service name + environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Decoding into a pre-filled struct only overwrites the keys that are
	// set, so defaults survive.
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToWeakSliceHookFunc(","),
			),
			TagName:          "koanf",
			Result:           mainConfig,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	mainConfig.Observability.ServiceName = "people-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
