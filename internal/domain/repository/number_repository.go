package repository

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// NumberRepository define a porta de persistência para PurchasedNumber.
type NumberRepository interface {
	// BulkCreate insere os números reservados de uma venda. Retorna
	// domain.ErrConflict se algum (raffle_id, number) já existir.
	BulkCreate(numbers []*entity.PurchasedNumber) error
	UsedNumbers(raffleID string) ([]int, error)
	CountByRaffle(raffleID string) (int, error)
	ListBySale(saleID string) ([]*entity.PurchasedNumber, error)
	DeleteBySale(saleID string) error
	// MarkWinners marca is_winner nos números comprados que batem com os premiados.
	MarkWinners(raffleID string, numbers []int) error
}
