package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.RaffleRepository = (*RaffleRepo)(nil)

const raffleColumns = `id, title, description, total_numbers, price_per_number, discount_price,
	discount_min_quantity, commission_rate, status, draw_date, created_at, updated_at`

// RaffleRepo implementação de RaffleRepository (usável com pool ou tx).
type RaffleRepo struct {
	q Querier
}

// NewRaffleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRaffleRepository(q Querier) *RaffleRepo {
	return &RaffleRepo{q: q}
}

// Create persiste uma nova rifa.
func (r *RaffleRepo) Create(rf *entity.Raffle) error {
	query := `
		INSERT INTO raffles (` + raffleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		rf.ID, rf.Title, rf.Description, rf.TotalNumbers, rf.PricePerNumber, rf.DiscountPrice,
		rf.DiscountMinQuantity, rf.CommissionRate, rf.Status, rf.DrawDate, rf.CreatedAt, rf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert raffle: %w", err)
	}
	return nil
}

func (r *RaffleRepo) scanOne(query string, args ...any) (*entity.Raffle, error) {
	var rf entity.Raffle
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&rf.ID, &rf.Title, &rf.Description, &rf.TotalNumbers, &rf.PricePerNumber, &rf.DiscountPrice,
		&rf.DiscountMinQuantity, &rf.CommissionRate, &rf.Status, &rf.DrawDate, &rf.CreatedAt, &rf.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raffle: %w", err)
	}
	return &rf, nil
}

// GetByID obtém uma rifa por ID.
func (r *RaffleRepo) GetByID(id string) (*entity.Raffle, error) {
	return r.scanOne(`SELECT `+raffleColumns+` FROM raffles WHERE id = $1`, id)
}

// GetByIDForUpdate obtém a rifa e bloqueia a linha (SELECT FOR UPDATE).
// Compradores concorrentes da mesma rifa serializam neste lock.
func (r *RaffleRepo) GetByIDForUpdate(id string) (*entity.Raffle, error) {
	return r.scanOne(`SELECT `+raffleColumns+` FROM raffles WHERE id = $1 FOR UPDATE`, id)
}

// GetActive obtém a rifa ativa (o uso corrente mantém exatamente uma).
func (r *RaffleRepo) GetActive() (*entity.Raffle, error) {
	return r.scanOne(`SELECT ` + raffleColumns + ` FROM raffles WHERE status = 'active' ORDER BY created_at DESC LIMIT 1`)
}

// List lista rifas com paginação, mais recentes primeiro.
func (r *RaffleRepo) List(limit, offset int) ([]*entity.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raffles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Raffle
	for rows.Next() {
		var rf entity.Raffle
		if err := rows.Scan(
			&rf.ID, &rf.Title, &rf.Description, &rf.TotalNumbers, &rf.PricePerNumber, &rf.DiscountPrice,
			&rf.DiscountMinQuantity, &rf.CommissionRate, &rf.Status, &rf.DrawDate, &rf.CreatedAt, &rf.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan raffle: %w", err)
		}
		list = append(list, &rf)
	}
	return list, rows.Err()
}

// Update atualiza uma rifa.
func (r *RaffleRepo) Update(rf *entity.Raffle) error {
	query := `
		UPDATE raffles
		SET title = $2, description = $3, price_per_number = $4, discount_price = $5,
			discount_min_quantity = $6, commission_rate = $7, status = $8, draw_date = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rf.ID, rf.Title, rf.Description, rf.PricePerNumber, rf.DiscountPrice,
		rf.DiscountMinQuantity, rf.CommissionRate, rf.Status, rf.DrawDate, rf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raffle: %w", err)
	}
	return nil
}
