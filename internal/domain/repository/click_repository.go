package repository

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// ClickRepository define a porta de persistência para PartnerClick.
type ClickRepository interface {
	Create(click *entity.PartnerClick) error
	ListByPartner(partnerID string, limit, offset int) ([]*entity.PartnerClick, error)
	CountByPartner(partnerID string) (total, converted int, err error)
	// MarkLatestConverted marca como convertido o clique mais recente ainda
	// não convertido do parceiro, vinculando a venda. Sem clique pendente, é no-op.
	MarkLatestConverted(partnerID, saleID string) error
}
