package quoterepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pricing"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRepository implements ports.QuoteRepository using GORM.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Add saves a freshly computed quote batch to the database.
func (r *GormQuoteRepository) Add(ctx context.Context, response pricing.QuoteResponse) error {
	if err := response.RequestID.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(response)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a quote batch by its request identifier.
func (r *GormQuoteRepository) Get(ctx context.Context, requestID kernel.UUID) (pricing.QuoteResponse, error) {
	if err := requestID.Validate(); err != nil {
		return pricing.QuoteResponse{}, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.QuoteResponse{}, errs.NewObjectNotFoundError("quote", requestID.String())
		}
		return pricing.QuoteResponse{}, err
	}

	return toDomain(dto)
}

// DeleteExpired removes every quote batch whose validity window ended before
// the cutoff and returns the number of rows deleted.
func (r *GormQuoteRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&QuoteDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
