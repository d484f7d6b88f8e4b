package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// SaleRepository define a porta de persistência para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate bloqueia a venda; usado na confirmação de pagamento
	// para que dois polls simultâneos não finalizem a mesma venda duas vezes.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	GetByCheckoutSession(sessionID string) (*entity.Sale, error)
	ListByPartner(partnerID string, limit, offset int) ([]*entity.Sale, error)
	ListByRaffle(raffleID string, limit, offset int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	// SumCommissionByPartner soma commission_amount das vendas concluídas do parceiro.
	SumCommissionByPartner(partnerID string) (decimal.Decimal, error)
	CountByPartner(partnerID string) (int, error)
}
