// Package partner cobre o portal do afiliado: rastreio de cliques do link
// /p/<slug>, painel de estatísticas e listagens do próprio parceiro.
package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// UseCase casos de uso do portal do parceiro.
type UseCase struct {
	profileRepo repository.ProfileRepository
	clickRepo   repository.ClickRepository
	saleRepo    repository.SaleRepository
	wallet      *wallet.UseCase
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	profileRepo repository.ProfileRepository,
	clickRepo repository.ClickRepository,
	saleRepo repository.SaleRepository,
	wallet *wallet.UseCase,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		clickRepo:   clickRepo,
		saleRepo:    saleRepo,
		wallet:      wallet,
		log:         log,
	}
}

// TrackClick registra uma visita ao link de afiliado. Slug desconhecido ou de
// parceiro inativo devolve ErrNotFound; a loja redireciona mesmo assim, só
// não conta o clique.
func (uc *UseCase) TrackClick(_ context.Context, in dto.TrackClickRequest) (*entity.PartnerClick, error) {
	p, err := uc.profileRepo.GetBySlug(in.PartnerSlug)
	if err != nil {
		return nil, err
	}
	if !p.IsActivePartner() {
		return nil, domain.ErrNotFound
	}
	click := &entity.PartnerClick{
		ID:        uuid.New().String(),
		PartnerID: p.ID,
		Referrer:  in.Referrer,
		UserAgent: in.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := uc.clickRepo.Create(click); err != nil {
		return nil, err
	}
	return click, nil
}

// Stats monta o painel do parceiro: cliques, conversões, vendas, comissão
// acumulada e saldo disponível — tudo recalculado do histórico.
func (uc *UseCase) Stats(ctx context.Context, partnerID string) (*dto.PartnerStatsResponse, error) {
	clicks, conversions, err := uc.clickRepo.CountByPartner(partnerID)
	if err != nil {
		return nil, err
	}
	salesCount, err := uc.saleRepo.CountByPartner(partnerID)
	if err != nil {
		return nil, err
	}
	commission, err := uc.saleRepo.SumCommissionByPartner(partnerID)
	if err != nil {
		return nil, err
	}
	balance, err := uc.wallet.AvailableBalance(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return &dto.PartnerStatsResponse{
		Clicks:           clicks,
		Conversions:      conversions,
		SalesCount:       salesCount,
		TotalCommission:  commission,
		AvailableBalance: balance,
	}, nil
}

// ListSales lista as vendas atribuídas ao parceiro.
func (uc *UseCase) ListSales(_ context.Context, partnerID string, page dto.PageRequest) ([]*entity.Sale, error) {
	page.DefaultPage()
	return uc.saleRepo.ListByPartner(partnerID, page.Limit, page.Offset)
}

// ListClicks lista os cliques do link do parceiro.
func (uc *UseCase) ListClicks(_ context.Context, partnerID string, page dto.PageRequest) ([]*entity.PartnerClick, error) {
	page.DefaultPage()
	return uc.clickRepo.ListByPartner(partnerID, page.Limit, page.Offset)
}
