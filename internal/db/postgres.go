package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dj-backend/internal/config"
)

// Connect opens the pgx pool and verifies the connection. There is no
// fallback chain; a missing database is a deployment problem, not something
// the process can work around.
func Connect(cfg *config.Config) *pgxpool.Pool {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping failed (%s:%d/%s): %v", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name, err)
	}

	log.Printf("Connected to database %s at %s:%d", cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)
	return pool
}
