package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, raffle_id, partner_id, customer_name, customer_whatsapp, customer_city,
	quantity, unit_price, total_amount, commission_amount, status, payment_method, door_to_door,
	checkout_session_id, cancel_reason, settled_at, created_at, updated_at`

// SaleRepo implementação de SaleRepository (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma nova venda. partner_id vazio é gravado como NULL.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.RaffleID, s.PartnerID, s.CustomerName, s.CustomerWhatsApp, s.CustomerCity,
		s.Quantity, s.UnitPrice, s.TotalAmount, s.CommissionAmount, s.Status, s.PaymentMethod,
		s.DoorToDoor, s.CheckoutSessionID, s.CancelReason, s.SettledAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func scanSale(row pgxScanner) (*entity.Sale, error) {
	var s entity.Sale
	var partnerID, sessionID *string
	err := row.Scan(
		&s.ID, &s.RaffleID, &partnerID, &s.CustomerName, &s.CustomerWhatsApp, &s.CustomerCity,
		&s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.CommissionAmount, &s.Status, &s.PaymentMethod,
		&s.DoorToDoor, &sessionID, &s.CancelReason, &s.SettledAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if partnerID != nil {
		s.PartnerID = *partnerID
	}
	if sessionID != nil {
		s.CheckoutSessionID = *sessionID
	}
	return &s, nil
}

func (r *SaleRepo) getOne(query string, args ...any) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByID obtém uma venda por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// GetByIDForUpdate obtém a venda e bloqueia a linha (SELECT FOR UPDATE).
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
}

// GetByCheckoutSession obtém a venda pela sessão do provedor de pagamento.
func (r *SaleRepo) GetByCheckoutSession(sessionID string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE checkout_session_id = $1`, sessionID)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// ListByPartner lista as vendas atribuídas ao parceiro, mais recentes primeiro.
func (r *SaleRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Sale, error) {
	return r.list(`SELECT `+saleColumns+` FROM sales WHERE partner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		partnerID, limit, offset)
}

// ListByRaffle lista as vendas de uma rifa.
func (r *SaleRepo) ListByRaffle(raffleID string, limit, offset int) ([]*entity.Sale, error) {
	return r.list(`SELECT `+saleColumns+` FROM sales WHERE raffle_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		raffleID, limit, offset)
}

// Update atualiza status e metadados da venda.
func (r *SaleRepo) Update(s *entity.Sale) error {
	query := `
		UPDATE sales
		SET status = $2, checkout_session_id = NULLIF($3, ''), cancel_reason = $4,
			settled_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Status, s.CheckoutSessionID, s.CancelReason, s.SettledAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// SumCommissionByPartner soma commission_amount das vendas concluídas do parceiro.
func (r *SaleRepo) SumCommissionByPartner(partnerID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(commission_amount), 0) FROM sales WHERE partner_id = $1 AND status = 'completed'`,
		partnerID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum commission: %w", err)
	}
	return sum, nil
}

// CountByPartner conta as vendas concluídas do parceiro.
func (r *SaleRepo) CountByPartner(partnerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales WHERE partner_id = $1 AND status = 'completed'`, partnerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}
