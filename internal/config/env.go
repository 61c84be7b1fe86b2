package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys consulted when the config file leaves a value unset.
const (
	EnvStore     = "DOGRUYAZ_STORE"
	EnvDBPath    = "DOGRUYAZ_DB_PATH"
	EnvRedisAddr = "DOGRUYAZ_REDIS_ADDR"
	EnvRedisDB   = "DOGRUYAZ_REDIS_DB"
	EnvLogLevel  = "DOGRUYAZ_LOG_LEVEL"
)

// LoadEnvFiles loads dotenv files that exist. Variables already set in the
// process environment win.
func LoadEnvFiles(paths ...string) error {
	var existing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv fills unset fields of cfg from the environment.
func ApplyEnv(cfg *FileConfig) error {
	setString(&cfg.Store.Backend, EnvStore)
	setString(&cfg.Store.Path, EnvDBPath)
	setString(&cfg.Store.RedisAddr, EnvRedisAddr)
	setString(&cfg.Log.Level, EnvLogLevel)
	if cfg.Store.RedisDB == nil {
		if v := os.Getenv(EnvRedisDB); v != "" {
			db, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s=%q is not an integer", EnvRedisDB, v)
			}
			cfg.Store.RedisDB = &db
		}
	}
	return nil
}

func setString(target **string, key string) {
	if *target != nil {
		return
	}
	if v := os.Getenv(key); v != "" {
		*target = &v
	}
}
