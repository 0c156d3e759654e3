package repository

import (
	"context"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/postgres/mappers"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuditRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditRepository(db *gorm.DB) *DefaultAuditRepository {
	return &DefaultAuditRepository{DB: db}
}

func (r *DefaultAuditRepository) RecordTransition(ctx context.Context, record *domain.TransitionRecord) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMTransition(record)).Error
}

func (r *DefaultAuditRepository) RecordSettlement(ctx context.Context, records []*domain.SettlementRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*models.SettlementLogModel, len(records))
	for i, record := range records {
		rows[i] = mappers.ToGORMSettlement(record)
	}
	return r.DB.WithContext(ctx).Create(rows).Error
}

func (r *DefaultAuditRepository) RecordSessionExpiry(ctx context.Context, record *domain.SessionExpiryRecord) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSessionExpiry(record)).Error
}
