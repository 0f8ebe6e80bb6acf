/*
Package cache memoizes assessments by their canonical input tuple.

The engine is pure, so a cached entry is always identical to a recomputed
one; the cache only saves CPU. Two backends exist: an in-process expiring LRU
and Redis for deployments with several API replicas.
*/
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"FitMetrics/internal/fitness"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache stores full assessments keyed by fitness.Profile.CacheKey.
type Cache interface {
	Get(ctx context.Context, key string) (fitness.Assessment, bool, error)
	Set(ctx context.Context, key string, a fitness.Assessment) error
	Close() error
}

// LRU is the in-process backend. Safe for concurrent use.
type LRU struct {
	lru *expirable.LRU[string, fitness.Assessment]
}

// NewLRU creates a cache holding at most size entries, each for ttl.
func NewLRU(size int, ttl time.Duration) *LRU {
	return &LRU{lru: expirable.NewLRU[string, fitness.Assessment](size, nil, ttl)}
}

// Get returns a private copy of the cached assessment.
func (c *LRU) Get(_ context.Context, key string) (fitness.Assessment, bool, error) {
	a, ok := c.lru.Get(key)
	if !ok {
		return fitness.Assessment{}, false, nil
	}
	return a.Clone(), true, nil
}

func (c *LRU) Set(_ context.Context, key string, a fitness.Assessment) error {
	c.lru.Add(key, a.Clone())
	return nil
}

func (c *LRU) Len() int {
	return c.lru.Len()
}

func (c *LRU) Close() error {
	c.lru.Purge()
	return nil
}

// hashKey keeps Redis keys short and free of separator characters.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return keyPrefix + hex.EncodeToString(sum[:])
}

const keyPrefix = "fitmetrics:assessment:"
