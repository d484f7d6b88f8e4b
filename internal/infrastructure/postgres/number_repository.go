package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.NumberRepository = (*NumberRepo)(nil)

// pgxScanner é o contrato mínimo para as funções de scan compartilhadas.
type pgxScanner interface {
	Scan(dest ...any) error
}

// NumberRepo implementação de NumberRepository (usável com pool ou tx).
type NumberRepo struct {
	q Querier
}

// NewNumberRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNumberRepository(q Querier) *NumberRepo {
	return &NumberRepo{q: q}
}

// BulkCreate insere os números reservados de uma venda. A constraint única
// em (raffle_id, number) é a rede de segurança contra dupla venda; violação
// vira domain.ErrConflict para o caso de uso decidir re-tentar.
func (r *NumberRepo) BulkCreate(numbers []*entity.PurchasedNumber) error {
	for _, n := range numbers {
		query := `
			INSERT INTO purchased_numbers (id, raffle_id, sale_id, number, is_winner, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.q.Exec(context.Background(), query,
			n.ID, n.RaffleID, n.SaleID, n.Number, n.IsWinner, n.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("insert purchased number %d: %w", n.Number, err)
		}
	}
	return nil
}

// UsedNumbers devolve todos os números já vendidos da rifa.
func (r *NumberRepo) UsedNumbers(raffleID string) ([]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT number FROM purchased_numbers WHERE raffle_id = $1`, raffleID)
	if err != nil {
		return nil, fmt.Errorf("used numbers: %w", err)
	}
	defer rows.Close()
	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// CountByRaffle conta os números vendidos da rifa.
func (r *NumberRepo) CountByRaffle(raffleID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchased_numbers WHERE raffle_id = $1`, raffleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count numbers: %w", err)
	}
	return n, nil
}

// ListBySale devolve os números de uma venda, em ordem crescente.
func (r *NumberRepo) ListBySale(saleID string) ([]*entity.PurchasedNumber, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, raffle_id, sale_id, number, is_winner, created_at
		 FROM purchased_numbers WHERE sale_id = $1 ORDER BY number`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list numbers by sale: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchasedNumber
	for rows.Next() {
		var n entity.PurchasedNumber
		if err := rows.Scan(&n.ID, &n.RaffleID, &n.SaleID, &n.Number, &n.IsWinner, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchased number: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// DeleteBySale libera os números de uma venda cancelada.
func (r *NumberRepo) DeleteBySale(saleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchased_numbers WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete numbers by sale: %w", err)
	}
	return nil
}

// MarkWinners marca is_winner nos números comprados que batem com os premiados.
func (r *NumberRepo) MarkWinners(raffleID string, numbers []int) error {
	if len(numbers) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchased_numbers SET is_winner = true WHERE raffle_id = $1 AND number = ANY($2)`,
		raffleID, numbers)
	if err != nil {
		return fmt.Errorf("mark winners: %w", err)
	}
	return nil
}
