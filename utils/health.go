// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest snapshot of the salon's backing stores, served
// verbatim on the health route.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	CacheRedis bool      `json:"cacheRedis"`
	LockRedis  bool      `json:"lockRedis"`
	CheckedAt  time.Time `json:"checkedAt"`
}

func (s HealthStatus) healthy() bool {
	return s.Mongo && s.CacheRedis && s.LockRedis
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the appointment database and both redis clients
// (catalog cache, day locks) once a minute and keeps the snapshot in memory.
func StartHealthMonitor(mongoClient *mongo.Client, cacheClient, lockClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			snapshot := HealthStatus{
				Mongo:      mongoClient.Ping(ctx, nil) == nil,
				CacheRedis: cacheClient.Ping(ctx).Err() == nil,
				LockRedis:  lockClient.Ping(ctx).Err() == nil,
				CheckedAt:  time.Now(),
			}
			if !snapshot.healthy() {
				GetLogger().Warn("dependency health check failed",
					zap.Bool("mongo", snapshot.Mongo),
					zap.Bool("cacheRedis", snapshot.CacheRedis),
					zap.Bool("lockRedis", snapshot.LockRedis))
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
