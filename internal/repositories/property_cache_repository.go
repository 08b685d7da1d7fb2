package repositories

import (
	"context"
	"time"

	"estatehub/internal/models"
	"estatehub/pkg/cache"

	"github.com/go-redis/redis/v8"
)

type propertyCache struct{}

func NewPropertyCache() PropertyCache {
	return &propertyCache{}
}

func (c *propertyCache) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := cache.Get(ctx, cache.PropertyKey(id), &property)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *propertyCache) SetProperty(ctx context.Context, id string, property *models.Property, expiration time.Duration) error {
	return cache.Set(ctx, cache.PropertyKey(id), property, expiration)
}

func (c *propertyCache) Invalidate(ctx context.Context, id string) error {
	return cache.Delete(ctx, cache.PropertyKey(id))
}
