/*
Package bootstrap assembles the account service from configuration.

It is shared by the API server and the seeder so both talk to the same
persistence backend with the same account defaults.
*/
package bootstrap

import (
	"context"
	"fmt"

	"github.com/soaresgus/community-backend/internal/app/cache"
	"github.com/soaresgus/community-backend/internal/app/db"
	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/configs"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
)

// Closer releases the resources opened by NewStore.
type Closer func()

// NewStore opens the store selected by cfg.StoreDriver and, when cfg.RedisURL
// is set, puts the read-through cache in front of it.
func NewStore(ctx context.Context, cfg *configs.AppConfig) (user.Store, Closer, error) {
	var (
		store   user.Store
		closers []func()
	)

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case configs.StoreDriverMemory:
		logx.Warn("Using the in-memory store; users are lost on restart.")
		store = db.NewMemoryStore()
	default:
		pool, err := db.NewPool(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		sqlDB := db.SQLX(pool)
		closers = append(closers, func() {
			_ = sqlDB.Close()
			pool.Close()
		})
		store = db.NewUserStore(sqlDB)
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		store = cache.NewUserStore(store, rdb, cfg.CacheTTL)
		logx.Info("User cache enabled.", "ttl", cfg.CacheTTL.String())
	}

	return store, closeAll, nil
}

// NewService builds the account service on store with the configured hashing
// cost and avatar template.
func NewService(store user.Store, cfg *configs.AppConfig) *user.Service {
	return user.NewService(
		store,
		user.NewBcryptHasher(cfg.BcryptCost),
		user.AvatarTemplate{BaseURL: cfg.AvatarBaseURL, Size: cfg.AvatarSize},
	)
}
