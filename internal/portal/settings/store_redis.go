// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/platform/constants"
)

// RedisCache implements [Cache] using Redis with JSON-encoded values.
type RedisCache struct {
	client *redis.Client
}

// NewCache creates a new Redis-backed settings [Cache].
func NewCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// cacheKey builds the Redis key for one application type.
func cacheKey(applicationType ApplicationType) string {
	return constants.RedisPrefixSettings + string(applicationType)
}

/*
Get retrieves a cached settings row.

Description: Returns apperr.NotFound if the entry is absent or expired.

Parameters:
  - context: context.Context
  - applicationType: ApplicationType

Returns:
  - *ApplicationSettings: Decoded entity
  - error: apperr.NotFound or connectivity errors
*/
func (cache *RedisCache) Get(context context.Context, applicationType ApplicationType) (*ApplicationSettings, error) {

	// Fetch the serialized row
	payload, err := cache.client.Get(context, cacheKey(applicationType)).Bytes()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Application settings")
		}
		return nil, fmt.Errorf("redis_settings_get_failed: %w", err)
	}

	// Decode the row
	settings := &ApplicationSettings{}
	if err := json.Unmarshal(payload, settings); err != nil {
		return nil, fmt.Errorf("redis_settings_decode_failed: %w", err)
	}

	// Return the settings
	return settings, nil
}

/*
Set stores a settings row with the standard TTL.

Parameters:
  - context: context.Context
  - settings: *ApplicationSettings

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisCache) Set(context context.Context, settings *ApplicationSettings) error {

	// Encode the row
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("redis_settings_encode_failed: %w", err)
	}

	// Store with the standard TTL
	key := cacheKey(settings.ApplicationType)
	if err := cache.client.Set(context, key, payload, constants.SettingsCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_settings_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Invalidate removes a cached settings row after a write.

Parameters:
  - context: context.Context
  - applicationType: ApplicationType

Returns:
  - error: Deletion failures
*/
func (cache *RedisCache) Invalidate(context context.Context, applicationType ApplicationType) error {

	// Delete the entry
	if err := cache.client.Del(context, cacheKey(applicationType)).Err(); err != nil {
		return fmt.Errorf("redis_settings_invalidate_failed: %w", err)
	}

	// Return nil on success
	return nil
}
