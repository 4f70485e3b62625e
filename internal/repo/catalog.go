package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/babyzion/market/internal/models"
)

// ListProducts returns in-stock products, optionally filtered by category.
func (r *GormRepo) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Where("in_stock = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var items []models.Product
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// UpsertProduct inserts or replaces a product keyed by its identifier.
// Feed syncs re-run with the same external ids, so the id is stable.
func (r *GormRepo) UpsertProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(prod).Error
}
