package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/babyzion/market/internal/events"
	"github.com/babyzion/market/internal/models"
	"github.com/babyzion/market/internal/repo"
	"github.com/babyzion/market/internal/transport"
	"github.com/babyzion/market/internal/validate"
)

const (
	maxUploadNameLen = 100
	maxUploadDescLen = 500
	listUploadsLimit = 50
)

var maxUploadPrice = decimal.NewFromInt(10000)

type UploadService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

// CreateUpload validates a seller submission the same way order intake
// does: required fields first, then formats, then sanitized persistence.
func (s *UploadService) CreateUpload(ctx context.Context, req transport.CreateUploadRequest) (*models.Upload, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: missing field: product_name", ErrValidation)
	}
	if strings.TrimSpace(req.SellerEmail) == "" {
		return nil, fmt.Errorf("%w: missing field: seller_email", ErrValidation)
	}
	if !validate.Email(strings.TrimSpace(req.SellerEmail)) {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}

	price, err := parseAmount(req.Price, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid numeric value", ErrValidation)
	}
	if price.IsNegative() || price.GreaterThan(maxUploadPrice) {
		return nil, fmt.Errorf("%w: price out of range", ErrValidation)
	}

	upload := &models.Upload{
		ProductName: validate.Sanitize(req.ProductName, maxUploadNameLen),
		Description: validate.Sanitize(req.Description, maxUploadDescLen),
		Price:       price,
		Category:    validate.Sanitize(req.Category, maxUploadNameLen),
		SellerName:  validate.Sanitize(req.SellerName, maxUploadNameLen),
		SellerEmail: validate.Sanitize(req.SellerEmail, maxEmailLen),
		Status:      "pending",
	}

	created, err := s.Repo.CreateUpload(ctx, upload)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, events.TopicUploads, events.EventUploadReceived, created.SellerEmail, map[string]any{
		"upload_id":    created.ID,
		"product_name": created.ProductName,
	})
	return created, nil
}

func (s *UploadService) ListUploads(ctx context.Context) ([]models.Upload, error) {
	return s.Repo.ListUploads(ctx, listUploadsLimit)
}
