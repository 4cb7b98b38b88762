// Package cache is a thin read-through layer over Redis for the hot
// list endpoints. Every catalog mutation invalidates the affected key.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"oudora_back_end/internal/database"
)

const (
	ProductsKey       = "products:all"
	CategoriesKey     = "categories:all"
	FragranceTypesKey = "fragrance-types:all"

	listTTL = time.Hour
)

// GetList loads a cached JSON list into dest. Returns false on miss or
// decode failure; callers then hit ScyllaDB.
func GetList(ctx context.Context, key string, dest interface{}) bool {
	if database.RedisClient == nil {
		return false
	}
	val, err := database.RedisClient.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func SetList(ctx context.Context, key string, v interface{}) {
	if database.RedisClient == nil {
		return
	}
	if data, err := json.Marshal(v); err == nil {
		database.RedisClient.Set(ctx, key, data, listTTL)
	}
}

func Invalidate(ctx context.Context, keys ...string) {
	if database.RedisClient == nil {
		return
	}
	database.RedisClient.Del(ctx, keys...)
}
