package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.WinningNumberRepository = (*WinningNumberRepo)(nil)

// WinningNumberRepo implementação de WinningNumberRepository (usável com pool ou tx).
type WinningNumberRepo struct {
	q Querier
}

// NewWinningNumberRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWinningNumberRepository(q Querier) *WinningNumberRepo {
	return &WinningNumberRepo{q: q}
}

// Create cadastra um número premiado. (raffle_id, number) é único.
func (r *WinningNumberRepo) Create(wn *entity.WinningNumber) error {
	query := `
		INSERT INTO winning_numbers (id, raffle_id, number, prize_name, prize_description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		wn.ID, wn.RaffleID, wn.Number, wn.PrizeName, wn.PrizeDescription, wn.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert winning number: %w", err)
	}
	return nil
}

// ListByRaffle lista os premiados da rifa em ordem de número.
func (r *WinningNumberRepo) ListByRaffle(raffleID string) ([]*entity.WinningNumber, error) {
	return r.query(`SELECT id, raffle_id, number, prize_name, prize_description, created_at
		FROM winning_numbers WHERE raffle_id = $1 ORDER BY number`, raffleID)
}

// FindMatches devolve os premiados da rifa cujo número está em numbers.
func (r *WinningNumberRepo) FindMatches(raffleID string, numbers []int) ([]*entity.WinningNumber, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	return r.query(`SELECT id, raffle_id, number, prize_name, prize_description, created_at
		FROM winning_numbers WHERE raffle_id = $1 AND number = ANY($2) ORDER BY number`, raffleID, numbers)
}

func (r *WinningNumberRepo) query(query string, args ...any) ([]*entity.WinningNumber, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list winning numbers: %w", err)
	}
	defer rows.Close()
	var list []*entity.WinningNumber
	for rows.Next() {
		var wn entity.WinningNumber
		if err := rows.Scan(&wn.ID, &wn.RaffleID, &wn.Number, &wn.PrizeName, &wn.PrizeDescription, &wn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan winning number: %w", err)
		}
		list = append(list, &wn)
	}
	return list, rows.Err()
}
