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

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

const withdrawalColumns = `id, partner_id, amount, method, pix_key, bank_name, bank_agency, bank_account,
	status, reject_reason, processed_by, processed_at, created_at, updated_at`

// WithdrawalRepo implementação de WithdrawalRepository (usável com pool ou tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste um novo pedido de saque.
func (r *WithdrawalRepo) Create(w *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.PartnerID, w.Amount, w.Method, w.PixKey, w.BankName, w.BankAgency, w.BankAccount,
		w.Status, w.RejectReason, w.ProcessedBy, w.ProcessedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

func scanWithdrawal(row pgxScanner) (*entity.Withdrawal, error) {
	var w entity.Withdrawal
	err := row.Scan(
		&w.ID, &w.PartnerID, &w.Amount, &w.Method, &w.PixKey, &w.BankName, &w.BankAgency, &w.BankAccount,
		&w.Status, &w.RejectReason, &w.ProcessedBy, &w.ProcessedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByID obtém um saque por ID.
func (r *WithdrawalRepo) GetByID(id string) (*entity.Withdrawal, error) {
	w, err := scanWithdrawal(r.q.QueryRow(context.Background(),
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

func (r *WithdrawalRepo) list(query string, args ...any) ([]*entity.Withdrawal, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// ListByPartner lista os saques do parceiro, mais recentes primeiro.
func (r *WithdrawalRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Withdrawal, error) {
	return r.list(`SELECT `+withdrawalColumns+` FROM withdrawals WHERE partner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		partnerID, limit, offset)
}

// ListByStatus lista saques por status para a fila de revisão do admin.
// Status vazio lista todos.
func (r *WithdrawalRepo) ListByStatus(status string, limit, offset int) ([]*entity.Withdrawal, error) {
	return r.list(`SELECT `+withdrawalColumns+` FROM withdrawals WHERE ($1 = '' OR status = $1) ORDER BY created_at LIMIT $2 OFFSET $3`,
		status, limit, offset)
}

// Update grava a transição de status e os metadados de processamento.
func (r *WithdrawalRepo) Update(w *entity.Withdrawal) error {
	query := `
		UPDATE withdrawals
		SET status = $2, reject_reason = $3, processed_by = $4, processed_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Status, w.RejectReason, w.ProcessedBy, w.ProcessedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update withdrawal: %w", err)
	}
	return nil
}

// SumByPartner soma amount dos saques do parceiro nos status dados.
func (r *WithdrawalRepo) SumByPartner(partnerID string, statuses ...string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE partner_id = $1 AND status = ANY($2)`,
		partnerID, statuses,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum withdrawals: %w", err)
	}
	return sum, nil
}
