package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/babyzion/market/internal/events"
	"github.com/babyzion/market/internal/feed"
	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/models"
	"github.com/babyzion/market/internal/repo"
)

const (
	defaultSyncKeyword  = "baby"
	defaultSyncPageSize = 50
	maxSyncPageSize     = 100
)

// FeedClient is the slice of the feed adapter the catalog needs.
type FeedClient interface {
	Configured() bool
	SearchProducts(ctx context.Context, keyword, categoryID string, page, pageSize int) ([]models.Product, error)
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Feed   FeedClient
	Events events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.Repo.ListCategories(ctx)
}

// SyncFromFeed fetches a page of feed listings and upserts them into the
// catalog. A per-row insert failure is logged and skipped; it does not
// abort the batch. Returns the number of rows stored.
func (s *CatalogService) SyncFromFeed(ctx context.Context, keyword string, pageSize int) (int, error) {
	if !s.Feed.Configured() {
		return 0, fmt.Errorf("%w: feed credentials absent", ErrNotConfigured)
	}

	if keyword == "" {
		keyword = defaultSyncKeyword
	}
	if pageSize <= 0 {
		pageSize = defaultSyncPageSize
	}
	if pageSize > maxSyncPageSize {
		pageSize = maxSyncPageSize
	}

	products, err := s.Feed.SearchProducts(ctx, keyword, "", 1, pageSize)
	if err != nil {
		if errors.Is(err, feed.ErrNotConfigured) {
			return 0, fmt.Errorf("%w: feed credentials absent", ErrNotConfigured)
		}
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(products) == 0 {
		return 0, fmt.Errorf("%w: feed returned nothing for %q", ErrNoResults, keyword)
	}

	l := logging.FromContext(ctx)
	added := 0
	for i := range products {
		if err := s.Repo.UpsertProduct(ctx, &products[i]); err != nil {
			l.Error("feed upsert failed", "product_id", products[i].ID, "error", err)
			continue
		}
		added++
	}

	s.Events.Publish(ctx, events.TopicCatalog, events.EventProductsSynced, keyword, map[string]any{
		"keyword": keyword,
		"count":   added,
	})
	return added, nil
}
