// Package cache provides a redis-backed cache used on the click redirect
// hot path. Affiliate balances are never cached; every balance read reflects
// the latest committed write in the ledger store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Set marshals the value as JSON and stores it under the default TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get unmarshals the cached JSON value into dest. The boolean reports
// whether the key was present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Delete removes keys from the cache.
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// FlushAll clears the whole cache. Used on startup so stale redirect URLs
// from a previous deployment never leak into live traffic.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the underlying redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}

func campaignRedirectKey(campaignID uint) string {
	return fmt.Sprintf("campaign:redirect:%d", campaignID)
}

// GetCampaignRedirect returns a cached redirect URL for a campaign.
func (s *CacheService) GetCampaignRedirect(ctx context.Context, campaignID uint) (string, bool, error) {
	var url string
	ok, err := s.Get(ctx, campaignRedirectKey(campaignID), &url)
	return url, ok, err
}

// SetCampaignRedirect caches a campaign's redirect URL.
func (s *CacheService) SetCampaignRedirect(ctx context.Context, campaignID uint, url string) error {
	return s.Set(ctx, campaignRedirectKey(campaignID), url)
}
