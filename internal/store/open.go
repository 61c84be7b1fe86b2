package store

import (
	"context"
	"fmt"

	"github.com/verte-zerg/dogruyaz/internal/model"
)

// Open returns the backend selected by cfg.
func Open(ctx context.Context, cfg model.StoreConfig) (KV, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store path is empty")
		}
		return OpenSQLite(cfg.Path)
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis address is empty")
		}
		prefix := cfg.RedisPrefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		return DialRedis(ctx, cfg.RedisAddr, cfg.RedisDB, prefix)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %s, %s or %s)", cfg.Backend, BackendSQLite, BackendRedis, BackendMemory)
	}
}
