// Package profiles cobre a gestão de perfis pelo back-office do admin.
package profiles

import (
	"context"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// UseCase casos de uso de gestão de perfis.
type UseCase struct {
	profileRepo repository.ProfileRepository
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(profileRepo repository.ProfileRepository, log *logger.Logger) *UseCase {
	return &UseCase{profileRepo: profileRepo, log: log}
}

// ListByRole lista perfis por papel (role vazio lista parceiros, o caso
// comum do back-office).
func (uc *UseCase) ListByRole(_ context.Context, role string, page dto.PageRequest) ([]dto.ProfileResponse, error) {
	if role == "" {
		role = entity.RolePartner
	}
	page.DefaultPage()
	list, err := uc.profileRepo.ListByRole(role, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProfile(p))
	}
	return out, nil
}

// Get devolve um perfil pelo ID.
func (uc *UseCase) Get(_ context.Context, id string) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProfileNotFound
	}
	resp := dto.FromProfile(p)
	return &resp, nil
}

// Deactivate desativa um perfil. Perfis nunca são removidos fisicamente:
// vendas e saques antigos continuam apontando para eles. Parceiro desativado
// para de receber atribuição e não consegue sacar.
func (uc *UseCase) Deactivate(_ context.Context, id string) error {
	p, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProfileNotFound
	}
	if p.Role == entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := uc.profileRepo.Deactivate(id); err != nil {
		return err
	}
	uc.log.Info().Str("profile_id", id).Msg("perfil desativado")
	return nil
}
