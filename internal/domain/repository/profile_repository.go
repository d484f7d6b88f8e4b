package repository

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// ProfileRepository define a porta de persistência para Profile.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	// GetByIDForUpdate bloqueia a linha do perfil (SELECT FOR UPDATE);
	// usado para serializar pedidos de saque concorrentes do mesmo parceiro.
	GetByIDForUpdate(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	GetBySlug(slug string) (*entity.Profile, error)
	ListByRole(role string, limit, offset int) ([]*entity.Profile, error)
	Update(profile *entity.Profile) error
	Deactivate(id string) error
}
