package repository

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// WinningNumberRepository define a porta de persistência para WinningNumber.
type WinningNumberRepository interface {
	Create(wn *entity.WinningNumber) error
	ListByRaffle(raffleID string) ([]*entity.WinningNumber, error)
	// FindMatches devolve os premiados da rifa cujo número está em numbers.
	FindMatches(raffleID string, numbers []int) ([]*entity.WinningNumber, error)
}
