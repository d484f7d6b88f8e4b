package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.ClickRepository = (*ClickRepo)(nil)

// ClickRepo implementação de ClickRepository (usável com pool ou tx).
type ClickRepo struct {
	q Querier
}

// NewClickRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClickRepository(q Querier) *ClickRepo {
	return &ClickRepo{q: q}
}

// Create registra uma visita ao link de afiliado.
func (r *ClickRepo) Create(c *entity.PartnerClick) error {
	query := `
		INSERT INTO partner_clicks (id, partner_id, referrer, user_agent, converted, sale_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PartnerID, c.Referrer, c.UserAgent, c.Converted, c.SaleID, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// ListByPartner lista os cliques do parceiro, mais recentes primeiro.
func (r *ClickRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.PartnerClick, error) {
	query := `
		SELECT id, partner_id, referrer, user_agent, converted, COALESCE(sale_id, ''), created_at
		FROM partner_clicks WHERE partner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, partnerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartnerClick
	for rows.Next() {
		var c entity.PartnerClick
		if err := rows.Scan(&c.ID, &c.PartnerID, &c.Referrer, &c.UserAgent, &c.Converted, &c.SaleID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan click: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByPartner conta cliques totais e convertidos do parceiro.
func (r *ClickRepo) CountByPartner(partnerID string) (total, converted int, err error) {
	err = r.q.QueryRow(context.Background(),
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE converted) FROM partner_clicks WHERE partner_id = $1`,
		partnerID,
	).Scan(&total, &converted)
	if err != nil {
		return 0, 0, fmt.Errorf("count clicks: %w", err)
	}
	return total, converted, nil
}

// MarkLatestConverted marca como convertido o clique mais recente ainda não
// convertido do parceiro, vinculando a venda. Sem clique pendente, é no-op.
func (r *ClickRepo) MarkLatestConverted(partnerID, saleID string) error {
	query := `
		UPDATE partner_clicks SET converted = true, sale_id = $2
		WHERE id = (
			SELECT id FROM partner_clicks
			WHERE partner_id = $1 AND NOT converted
			ORDER BY created_at DESC LIMIT 1
		)`
	_, err := r.q.Exec(context.Background(), query, partnerID, saleID)
	if err != nil {
		return fmt.Errorf("mark click converted: %w", err)
	}
	return nil
}
