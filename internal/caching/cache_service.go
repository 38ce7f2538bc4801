package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"homekitchen/internal/models"
)

// CacheService caches the read-heavy menu surface. A cache miss is reported
// as (nil, nil); callers fall through to the database.
type CacheService interface {
	GetMenu(ctx context.Context) ([]*models.MenuItem, error)
	SetMenu(ctx context.Context, items []*models.MenuItem, ttl time.Duration) error
	GetMenuCategory(ctx context.Context, category string) ([]*models.MenuItem, error)
	SetMenuCategory(ctx context.Context, category string, items []*models.MenuItem, ttl time.Duration) error
	GetCategories(ctx context.Context) ([]string, error)
	SetCategories(ctx context.Context, categories []string, ttl time.Duration) error
	InvalidateMenu(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

const (
	menuKey         = "homekitchen:menu:available"
	categoriesKey   = "homekitchen:menu:categories"
	categoryKeyTmpl = "homekitchen:menu:category:%s"
	menuKeysPattern = "homekitchen:menu:*"
)

func (r *redisCacheService) GetMenu(ctx context.Context) ([]*models.MenuItem, error) {
	return r.getItems(ctx, menuKey)
}

func (r *redisCacheService) SetMenu(ctx context.Context, items []*models.MenuItem, ttl time.Duration) error {
	return r.setJSON(ctx, menuKey, items, ttl)
}

func (r *redisCacheService) GetMenuCategory(ctx context.Context, category string) ([]*models.MenuItem, error) {
	return r.getItems(ctx, fmt.Sprintf(categoryKeyTmpl, category))
}

func (r *redisCacheService) SetMenuCategory(ctx context.Context, category string, items []*models.MenuItem, ttl time.Duration) error {
	return r.setJSON(ctx, fmt.Sprintf(categoryKeyTmpl, category), items, ttl)
}

func (r *redisCacheService) GetCategories(ctx context.Context) ([]string, error) {
	data, err := r.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *redisCacheService) SetCategories(ctx context.Context, categories []string, ttl time.Duration) error {
	return r.setJSON(ctx, categoriesKey, categories, ttl)
}

func (r *redisCacheService) InvalidateMenu(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, menuKeysPattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) getItems(ctx context.Context, key string) ([]*models.MenuItem, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var items []*models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}
