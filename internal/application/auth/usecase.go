// Package auth cobre cadastro, login e emissão de tokens JWT.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/config"
	"github.com/tu-usuario/rifa-pro/pkg/jwt"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
	"github.com/tu-usuario/rifa-pro/pkg/slug"
)

// UseCase casos de uso de autenticação.
type UseCase struct {
	profileRepo repository.ProfileRepository
	jwtCfg      config.JWTConfig
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(profileRepo repository.ProfileRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{profileRepo: profileRepo, jwtCfg: jwtCfg, log: log}
}

// Register cadastra um perfil. Role vazio vira customer; partner recebe slug
// único gerado do nome para o link de afiliado. Admin não se cadastra pela
// API pública.
func (uc *UseCase) Register(_ context.Context, in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}

	role := in.Role
	switch role {
	case "":
		role = entity.RoleCustomer
	case entity.RoleCustomer, entity.RolePartner:
	default:
		return nil, domain.ErrForbidden
	}

	existing, err := uc.profileRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		WhatsApp:     strings.TrimSpace(in.WhatsApp),
		City:         strings.TrimSpace(in.City),
		Role:         role,
		PasswordHash: string(hash),
		PixKey:       strings.TrimSpace(in.PixKey),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == entity.RolePartner {
		profile.Slug, err = uc.uniqueSlug(name)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.profileRepo.Create(profile); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	uc.log.Info().
		Str("profile_id", profile.ID).
		Str("role", profile.Role).
		Str("slug", profile.Slug).
		Msg("perfil cadastrado")
	resp := dto.FromProfile(profile)
	return &resp, nil
}

// uniqueSlug gera o slug do parceiro a partir do nome; colisão recebe um
// sufixo aleatório curto.
func (uc *UseCase) uniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "parceiro"
	}
	taken, err := uc.profileRepo.GetBySlug(base)
	if err != nil {
		return "", err
	}
	if taken == nil {
		return base, nil
	}
	return slug.WithSuffix(base, uuid.New().String()[:8]), nil
}

// Login valida as credenciais e emite o token JWT com o papel do perfil.
func (uc *UseCase) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	profile, err := uc.profileRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !profile.IsActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("profile_id", profile.ID).Str("role", profile.Role).Msg("login")
	return &dto.LoginResponse{Token: token, Profile: dto.FromProfile(profile)}, nil
}

// Me devolve o perfil autenticado.
func (uc *UseCase) Me(_ context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	resp := dto.FromProfile(profile)
	return &resp, nil
}
