// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// dotenv files are read into the process environment first (without overriding
// variables that are already set), then the environment is parsed into any Go
// struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type ServerConfig struct {
//	    Port  string `env:"PORT" envDefault:"5000"`
//	    Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
//
// Explicit dotenv files:
//
//	err := config.Load(&cfg, config.WithEnvFiles(".env.local", ".env"))
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"PORT": "8080"}))
//
// # Error Handling
//
//   - ErrNilPointer: a nil pointer was passed to Load
//   - ErrLoadingEnvFile: an explicitly requested dotenv file could not be read
//   - ErrParsingConfig: parsing failed (missing required variable, bad value)
package config
