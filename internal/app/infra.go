package app

import (
	"context"
	"database/sql"

	"github.com/buntagonalprism/firebase-auth-utils/internal/config"
	"github.com/buntagonalprism/firebase-auth-utils/internal/db"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
	"github.com/buntagonalprism/firebase-auth-utils/internal/redis"

	_ "github.com/lib/pq"
)

// Infra holds the optional backing stores. Either may be nil: the service
// degrades to a nop audit trail and an in-memory rate limiter.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunKeystoneMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		infra.DB = &db.DB{DB: sqlDB}
		logger.Info("database ready", nil)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	}

	return infra, nil
}

func (i *Infra) Close() error {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		return i.DB.Close()
	}
	return nil
}
