package repository

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// RaffleRepository define a porta de persistência para Raffle.
type RaffleRepository interface {
	Create(raffle *entity.Raffle) error
	GetByID(id string) (*entity.Raffle, error)
	// GetByIDForUpdate bloqueia a linha da rifa (SELECT FOR UPDATE);
	// compradores concorrentes serializam aqui antes de alocar números.
	GetByIDForUpdate(id string) (*entity.Raffle, error)
	GetActive() (*entity.Raffle, error)
	List(limit, offset int) ([]*entity.Raffle, error)
	Update(raffle *entity.Raffle) error
}
