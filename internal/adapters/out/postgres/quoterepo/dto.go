// Package quoterepo provides data transfer objects and mapping functions for
// quote-snapshot persistence. Each row is one computed quote batch, stored so
// that submissions can be checked against the prices actually offered and so
// expired batches can be purged.
package quoterepo

import (
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for one quote batch. The option
// groups are stored as JSONB documents; the expiry is a column so the purge
// job can delete by range.
type QuoteDTO struct {
	RequestID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CalculatedAt time.Time
	ExpiresAt    time.Time `gorm:"index"`
	Ground       []byte    `gorm:"type:jsonb"`
	Air          []byte    `gorm:"type:jsonb"`
	Freight      []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for quote snapshots.
func (QuoteDTO) TableName() string {
	return "quotes"
}

// fromDomain converts a quote batch to its database representation.
func fromDomain(response pricing.QuoteResponse) (QuoteDTO, error) {
	ground, err := json.Marshal(response.Ground)
	if err != nil {
		return QuoteDTO{}, err
	}
	air, err := json.Marshal(response.Air)
	if err != nil {
		return QuoteDTO{}, err
	}
	freight, err := json.Marshal(response.Freight)
	if err != nil {
		return QuoteDTO{}, err
	}

	return QuoteDTO{
		RequestID:    response.RequestID.Bytes(),
		CalculatedAt: response.CalculatedAt,
		ExpiresAt:    response.ExpiresAt,
		Ground:       ground,
		Air:          air,
		Freight:      freight,
	}, nil
}

// toDomain converts a database DTO back into a quote batch.
func toDomain(dto QuoteDTO) (pricing.QuoteResponse, error) {
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return pricing.QuoteResponse{}, err
	}

	response := pricing.QuoteResponse{
		RequestID:    requestID,
		CalculatedAt: dto.CalculatedAt,
		ExpiresAt:    dto.ExpiresAt,
	}

	for raw, target := range map[*[]byte]*[]pricing.Option{
		&dto.Ground:  &response.Ground,
		&dto.Air:     &response.Air,
		&dto.Freight: &response.Freight,
	} {
		if len(*raw) == 0 {
			continue
		}
		if err = json.Unmarshal(*raw, target); err != nil {
			return pricing.QuoteResponse{}, err
		}
	}

	return response, nil
}
