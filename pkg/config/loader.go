package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load fills cfg from environment variables based on `env` field tags. The
// default .env file, if present, is loaded once per process before the first
// parse; a missing file is not an error.
//
// Example:
//
//	type Config struct {
//		URITemplate string `env:"TENANTDB_URI_TEMPLATE,required"`
//		MaxPoolSize uint64 `env:"TENANTDB_MAX_POOL_SIZE" envDefault:"100"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}
