package services

import (
	"context"
	"log"
	"time"

	"homekitchen/internal/caching"
	"homekitchen/internal/common"
	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

const menuCacheTTL = 15 * time.Minute

type MenuService interface {
	ListAvailable(ctx context.Context) ([]*models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]*models.MenuItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	RefreshCache(ctx context.Context) error
}

type menuService struct {
	menuRepo repositories.MenuRepository
	cache    caching.CacheService
}

func NewMenuService(menuRepo repositories.MenuRepository, cache caching.CacheService) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache}
}

// ListAvailable returns available items ordered by category then name. Cache
// errors are logged and never fail the request.
func (s *menuService) ListAvailable(ctx context.Context) ([]*models.MenuItem, error) {
	if cached, err := s.cache.GetMenu(ctx); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Menu cache read failed: %v", err)
	}

	items, err := s.menuRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetMenu(ctx, items, menuCacheTTL); err != nil {
		log.Printf("Menu cache write failed: %v", err)
	}
	return items, nil
}

func (s *menuService) ListByCategory(ctx context.Context, category string) ([]*models.MenuItem, error) {
	if cached, err := s.cache.GetMenuCategory(ctx, category); len(cached) > 0 {
		return cached, nil
	} else if err != nil {
		log.Printf("Menu cache read failed for category %q: %v", category, err)
	}

	items, err := s.menuRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, common.ErrNotFound
	}

	if err := s.cache.SetMenuCategory(ctx, category, items, menuCacheTTL); err != nil {
		log.Printf("Menu cache write failed for category %q: %v", category, err)
	}
	return items, nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]string, error) {
	if cached, err := s.cache.GetCategories(ctx); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Category cache read failed: %v", err)
	}

	categories, err := s.menuRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCategories(ctx, categories, menuCacheTTL); err != nil {
		log.Printf("Category cache write failed: %v", err)
	}
	return categories, nil
}

// RefreshCache reloads the full menu and category list into the cache. Run
// periodically by the background scheduler.
func (s *menuService) RefreshCache(ctx context.Context) error {
	items, err := s.menuRepo.ListAvailable(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.SetMenu(ctx, items, menuCacheTTL); err != nil {
		return err
	}

	categories, err := s.menuRepo.ListCategories(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetCategories(ctx, categories, menuCacheTTL)
}
