package mappers

import (
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/postgres/models"
)

func ToGORMTransition(record *domain.TransitionRecord) *models.TransitionLogModel {
	return &models.TransitionLogModel{
		ID:        record.ID,
		OrderID:   record.OrderID,
		OldStatus: string(record.OldStatus),
		NewStatus: string(record.NewStatus),
		ActorID:   record.ActorID,
		ActorRole: string(record.ActorRole),
		Rejected:  record.Rejected,
		Reason:    record.Reason,
		CreatedAt: record.CreatedAt,
	}
}

func ToGORMSettlement(record *domain.SettlementRecord) *models.SettlementLogModel {
	return &models.SettlementLogModel{
		ID:        record.ID,
		OrderID:   record.OrderID,
		PaymentID: record.PaymentID,
		ActorID:   record.ActorID,
		Success:   record.Success,
		Error:     record.Error,
		CreatedAt: record.CreatedAt,
	}
}

func ToGORMSessionExpiry(record *domain.SessionExpiryRecord) *models.SessionExpiryLogModel {
	return &models.SessionExpiryLogModel{
		ID:           record.ID,
		SessionID:    record.SessionID,
		UserID:       record.UserID,
		LastActivity: record.LastActivity,
		ExpiredAt:    record.ExpiredAt,
	}
}
