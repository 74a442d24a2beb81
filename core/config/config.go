// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, when present, is loaded into the process
// environment once on first use; parsing is handled by caarlos0/env.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//		Root string `env:"ASSETS_ROOT,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed only once per process; subsequent
// Load calls for the same type return the cached value.
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load populates cfg from environment variables. The first call for a
// given struct type parses the environment; later calls return the cached
// result so repeated loads are cheap and consistent.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: destination must not be nil")
	}
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return fmt.Errorf("config: destination must be a struct pointer, got *%s", reflect.TypeFor[T]().Kind())
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; the process environment still applies.
		_ = godotenv.Load()
	})

	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load but panics on failure. Intended for application startup
// where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
