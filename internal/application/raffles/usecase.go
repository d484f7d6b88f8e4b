// Package raffles cobre o ciclo de vida da rifa: criação e edição pelo
// admin, vitrine pública, números premiados e o fechamento do sorteio.
package raffles

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// UseCase casos de uso de rifa.
type UseCase struct {
	txRunner    sales.TxRunner
	raffleRepo  repository.RaffleRepository
	numberRepo  repository.NumberRepository
	winningRepo repository.WinningNumberRepository
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner sales.TxRunner,
	raffleRepo repository.RaffleRepository,
	numberRepo repository.NumberRepository,
	winningRepo repository.WinningNumberRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		raffleRepo:  raffleRepo,
		numberRepo:  numberRepo,
		winningRepo: winningRepo,
		log:         log,
	}
}

// hundred limite superior da taxa de comissão percentual.
var hundred = decimal.NewFromInt(100)

// Create cria uma rifa ativa. A vitrine mostra uma rifa ativa por vez, então
// criar com outra ativa no ar devolve conflito.
func (uc *UseCase) Create(_ context.Context, in dto.CreateRaffleRequest) (*dto.RaffleResponse, error) {
	if in.TotalNumbers < 1 {
		return nil, fmt.Errorf("total de números deve ser positivo: %w", domain.ErrInvalidInput)
	}
	if !in.PricePerNumber.IsPositive() {
		return nil, fmt.Errorf("preço por número deve ser positivo: %w", domain.ErrInvalidInput)
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(hundred) {
		return nil, fmt.Errorf("taxa de comissão deve estar entre 0 e 100: %w", domain.ErrInvalidInput)
	}
	if in.DiscountMinQuantity > 0 && !in.DiscountPrice.IsPositive() {
		return nil, fmt.Errorf("preço com desconto deve ser positivo: %w", domain.ErrInvalidInput)
	}

	active, err := uc.raffleRepo.GetActive()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	r := &entity.Raffle{
		ID:                  uuid.New().String(),
		Title:               in.Title,
		Description:         in.Description,
		TotalNumbers:        in.TotalNumbers,
		PricePerNumber:      in.PricePerNumber,
		DiscountPrice:       in.DiscountPrice,
		DiscountMinQuantity: in.DiscountMinQuantity,
		CommissionRate:      in.CommissionRate,
		Status:              entity.RaffleStatusActive,
		DrawDate:            in.DrawDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.raffleRepo.Create(r); err != nil {
		return nil, err
	}

	uc.log.Info().Str("raffle_id", r.ID).Int("total_numbers", r.TotalNumbers).Msg("rifa criada")
	resp := dto.FromRaffle(r, 0)
	return &resp, nil
}

// Update edita título, preços, desconto, comissão e data do sorteio.
// O pool de números é imutável depois de criada.
func (uc *UseCase) Update(_ context.Context, id string, in dto.UpdateRaffleRequest) (*dto.RaffleResponse, error) {
	if !in.PricePerNumber.IsPositive() {
		return nil, fmt.Errorf("preço por número deve ser positivo: %w", domain.ErrInvalidInput)
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(hundred) {
		return nil, fmt.Errorf("taxa de comissão deve estar entre 0 e 100: %w", domain.ErrInvalidInput)
	}

	r, err := uc.raffleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.RaffleStatusActive {
		return nil, domain.ErrRaffleNotActive
	}

	r.Title = in.Title
	r.Description = in.Description
	r.PricePerNumber = in.PricePerNumber
	r.DiscountPrice = in.DiscountPrice
	r.DiscountMinQuantity = in.DiscountMinQuantity
	r.CommissionRate = in.CommissionRate
	r.DrawDate = in.DrawDate
	r.UpdatedAt = time.Now()
	if err := uc.raffleRepo.Update(r); err != nil {
		return nil, err
	}
	return uc.withSoldCount(r)
}

// Get devolve a rifa com a contagem de números vendidos.
func (uc *UseCase) Get(_ context.Context, id string) (*dto.RaffleResponse, error) {
	r, err := uc.raffleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withSoldCount(r)
}

// GetActive devolve a rifa da vitrine.
func (uc *UseCase) GetActive(_ context.Context) (*dto.RaffleResponse, error) {
	r, err := uc.raffleRepo.GetActive()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withSoldCount(r)
}

// List lista as rifas para o back-office.
func (uc *UseCase) List(_ context.Context, page dto.PageRequest) ([]dto.RaffleResponse, error) {
	page.DefaultPage()
	list, err := uc.raffleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RaffleResponse, 0, len(list))
	for _, r := range list {
		resp, err := uc.withSoldCount(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *UseCase) withSoldCount(r *entity.Raffle) (*dto.RaffleResponse, error) {
	sold, err := uc.numberRepo.CountByRaffle(r.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromRaffle(r, sold)
	return &resp, nil
}

// AddWinningNumber cadastra um número premiado antes do sorteio.
func (uc *UseCase) AddWinningNumber(_ context.Context, raffleID string, in dto.WinningNumberRequest) (*dto.WinningNumberResponse, error) {
	r, err := uc.raffleRepo.GetByID(raffleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number < 1 || in.Number > r.TotalNumbers {
		return nil, fmt.Errorf("número fora do intervalo 1..%d: %w", r.TotalNumbers, domain.ErrInvalidInput)
	}
	if in.PrizeName == "" {
		return nil, fmt.Errorf("nome do prêmio é obrigatório: %w", domain.ErrInvalidInput)
	}

	wn := &entity.WinningNumber{
		ID:               uuid.New().String(),
		RaffleID:         raffleID,
		Number:           in.Number,
		PrizeName:        in.PrizeName,
		PrizeDescription: in.PrizeDescription,
		CreatedAt:        time.Now(),
	}
	if err := uc.winningRepo.Create(wn); err != nil {
		return nil, err
	}
	resp := dto.FromWinningNumber(wn)
	return &resp, nil
}

// ListWinningNumbers lista os premiados da rifa.
func (uc *UseCase) ListWinningNumbers(_ context.Context, raffleID string) ([]dto.WinningNumberResponse, error) {
	list, err := uc.winningRepo.ListByRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WinningNumberResponse, 0, len(list))
	for _, wn := range list {
		out = append(out, dto.FromWinningNumber(wn))
	}
	return out, nil
}

// Draw encerra a rifa: active -> finished e marca is_winner nos números
// comprados que batem com os premiados, tudo na mesma transação.
func (uc *UseCase) Draw(ctx context.Context, raffleID string) (*dto.RaffleResponse, error) {
	var raffle *entity.Raffle
	err := uc.txRunner.Run(ctx, func(
		raffleRepo repository.RaffleRepository,
		_ repository.SaleRepository,
		numberRepo repository.NumberRepository,
		_ repository.ClickRepository,
		winningRepo repository.WinningNumberRepository,
	) error {
		r, err := raffleRepo.GetByIDForUpdate(raffleID)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		if r.Status != entity.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}

		winners, err := winningRepo.ListByRaffle(raffleID)
		if err != nil {
			return err
		}
		numbers := make([]int, 0, len(winners))
		for _, wn := range winners {
			numbers = append(numbers, wn.Number)
		}
		if err := numberRepo.MarkWinners(raffleID, numbers); err != nil {
			return err
		}

		r.Status = entity.RaffleStatusFinished
		r.UpdatedAt = time.Now()
		if err := raffleRepo.Update(r); err != nil {
			return err
		}
		raffle = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("raffle_id", raffleID).Msg("sorteio encerrado")
	return uc.withSoldCount(raffle)
}

// Cancel cancela uma rifa ativa (vendas já feitas ficam como estão; o
// reembolso é tratado fora da plataforma).
func (uc *UseCase) Cancel(_ context.Context, raffleID string) (*dto.RaffleResponse, error) {
	r, err := uc.raffleRepo.GetByID(raffleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.RaffleStatusActive {
		return nil, domain.ErrRaffleNotActive
	}
	r.Status = entity.RaffleStatusCancelled
	r.UpdatedAt = time.Now()
	if err := uc.raffleRepo.Update(r); err != nil {
		return nil, err
	}
	uc.log.Info().Str("raffle_id", raffleID).Msg("rifa cancelada")
	return uc.withSoldCount(r)
}
