package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moura95/order-cache-challenge/config"
	"github.com/moura95/order-cache-challenge/internal/ordercache"
	"github.com/moura95/order-cache-challenge/pkg/logger"
)

// Load harness: fills the cache with a seeded pseudo-random order flow, then
// runs a matching sweep over every security and reports timings.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	securities := pool("SEC", cfg.SecurityCount)
	users := pool("USER", cfg.UserCount)
	companies := pool("COMP", cfg.CompanyCount)

	rng := rand.New(rand.NewSource(cfg.Seed))
	orders := make([]ordercache.Order, cfg.OrderCount)
	for i := range orders {
		side := ordercache.Buy
		if rng.Intn(2) == 1 {
			side = ordercache.Sell
		}
		orders[i] = ordercache.NewOrder(
			uuid.NewString(),
			securities[rng.Intn(len(securities))],
			side,
			uint64(rng.Intn(9901)+100),
			users[rng.Intn(len(users))],
			companies[rng.Intn(len(companies))],
		)
	}

	zl.Info("workload generated",
		zap.Int("orders", cfg.OrderCount),
		zap.Int("securities", cfg.SecurityCount),
		zap.Int64("seed", cfg.Seed))

	cache := ordercache.NewCacheWithLogger(zl)

	start := time.Now()
	for _, o := range orders {
		cache.AddOrder(o)
	}
	insertElapsed := time.Since(start)

	zl.Info("orders ingested",
		zap.Int("accepted", cache.Len()),
		zap.Duration("elapsed", insertElapsed),
		zap.Float64("orders_per_sec", float64(cache.Len())/insertElapsed.Seconds()))

	start = time.Now()
	var total uint64
	for _, securityID := range securities {
		total += cache.GetMatchingSizeForSecurity(securityID)
	}
	sweepElapsed := time.Since(start)

	zl.Info("matching sweep complete",
		zap.Int("securities", len(securities)),
		zap.Duration("elapsed", sweepElapsed),
		zap.Uint64("total_matched_qty", total))
}

func pool(prefix string, n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return values
}
