package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// WithdrawalRepository define a porta de persistência para Withdrawal.
type WithdrawalRepository interface {
	Create(w *entity.Withdrawal) error
	GetByID(id string) (*entity.Withdrawal, error)
	ListByPartner(partnerID string, limit, offset int) ([]*entity.Withdrawal, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Withdrawal, error)
	Update(w *entity.Withdrawal) error
	// SumByPartner soma amount dos saques do parceiro nos status dados.
	SumByPartner(partnerID string, statuses ...string) (decimal.Decimal, error)
}
