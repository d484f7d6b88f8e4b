package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/config"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// CheckoutUseCase liga a loja ao provedor de pagamento: abre a sessão PIX na
// criação da venda e, no poll de verificação, confirma o pagamento e aloca os
// números na mesma transação.
type CheckoutUseCase struct {
	creator     *sales.CreateSaleUseCase
	allocator   *sales.AllocateNumbersUseCase
	txRunner    sales.TxRunner
	raffleRepo  repository.RaffleRepository
	saleRepo    repository.SaleRepository
	numberRepo  repository.NumberRepository
	winningRepo repository.WinningNumberRepository
	provider    CheckoutProvider
	cfg         config.PaymentConfig
	log         *logger.Logger
}

// NewCheckoutUseCase constrói o caso de uso.
func NewCheckoutUseCase(
	creator *sales.CreateSaleUseCase,
	allocator *sales.AllocateNumbersUseCase,
	txRunner sales.TxRunner,
	raffleRepo repository.RaffleRepository,
	saleRepo repository.SaleRepository,
	numberRepo repository.NumberRepository,
	winningRepo repository.WinningNumberRepository,
	provider CheckoutProvider,
	cfg config.PaymentConfig,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		creator:     creator,
		allocator:   allocator,
		txRunner:    txRunner,
		raffleRepo:  raffleRepo,
		saleRepo:    saleRepo,
		numberRepo:  numberRepo,
		winningRepo: winningRepo,
		provider:    provider,
		cfg:         cfg,
		log:         log,
	}
}

// CreatePixPayment cria a venda pendente da rifa ativa e abre a sessão de
// checkout no provedor. Erro do provedor sobe intacto; a venda fica pendente
// sem sessão e nunca recebe números.
func (uc *CheckoutUseCase) CreatePixPayment(ctx context.Context, in dto.CreateCheckoutRequest) (*dto.CheckoutResponse, error) {
	active, err := uc.raffleRepo.GetActive()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.ErrRaffleNotActive
	}

	sale, err := uc.creator.Create(ctx, dto.CreateSaleRequest{
		RaffleID:         active.ID,
		PartnerSlug:      in.PartnerSlug,
		CustomerName:     in.CustomerName,
		CustomerWhatsApp: in.CustomerWhatsApp,
		CustomerCity:     in.CustomerCity,
		Quantity:         in.Quantity,
		PaymentMethod:    entity.PaymentMethodPix,
	})
	if err != nil {
		return nil, err
	}

	session, err := uc.provider.CreateSession(ctx, SessionRequest{
		SaleID:           sale.ID,
		Description:      fmt.Sprintf("%s — %d número(s)", active.Title, sale.Quantity),
		Amount:           sale.TotalAmount,
		CustomerName:     sale.CustomerName,
		CustomerWhatsApp: sale.CustomerWhatsApp,
		SuccessURL:       uc.cfg.SuccessURL,
		CancelURL:        uc.cfg.CancelURL,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("sale_id", sale.ID).Msg("falha ao abrir sessão de checkout")
		return nil, err
	}

	sale.CheckoutSessionID = session.ID
	sale.UpdatedAt = time.Now()
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}

	uc.log.Info().Str("sale_id", sale.ID).Str("session_id", session.ID).Msg("sessão de checkout criada")
	return &dto.CheckoutResponse{SaleID: sale.ID, SessionID: session.ID, URL: session.URL}, nil
}

// VerifyPayment consulta o provedor e, no primeiro poll pago, finaliza a
// venda: aloca os números, marca completed e converte o clique do parceiro na
// mesma transação. Polls seguintes são idempotentes e devolvem o mesmo
// resultado lendo do banco.
func (uc *CheckoutUseCase) VerifyPayment(ctx context.Context, sessionID string) (*dto.VerifyPaymentResponse, error) {
	sale, err := uc.saleRepo.GetByCheckoutSession(sessionID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	// Venda já finalizada: responde do banco sem consultar o provedor.
	if sale.Status == entity.SaleStatusCompleted {
		return uc.settledResponse(sale)
	}

	status, err := uc.provider.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !status.Paid {
		return &dto.VerifyPaymentResponse{Paid: false, Status: status.Status}, nil
	}

	var numbers []int
	err = uc.txRunner.Run(ctx, func(
		raffleRepo repository.RaffleRepository,
		saleRepo repository.SaleRepository,
		numberRepo repository.NumberRepository,
		clickRepo repository.ClickRepository,
		_ repository.WinningNumberRepository,
	) error {
		locked, err := saleRepo.GetByIDForUpdate(sale.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		// Outro poll finalizou primeiro: apenas lê os números gravados.
		if locked.Status == entity.SaleStatusCompleted {
			sale = locked
			rows, err := numberRepo.ListBySale(locked.ID)
			if err != nil {
				return err
			}
			for _, row := range rows {
				numbers = append(numbers, row.Number)
			}
			return nil
		}
		if locked.Status != entity.SaleStatusPending {
			return domain.ErrConflict
		}

		now := time.Now()
		numbers, err = uc.allocator.AllocateInTx(raffleRepo, numberRepo, locked.RaffleID, locked.ID, locked.Quantity, now)
		if err != nil {
			return err
		}
		locked.Status = entity.SaleStatusCompleted
		locked.UpdatedAt = now
		if err := saleRepo.Update(locked); err != nil {
			return err
		}
		if locked.PartnerID != "" {
			if err := clickRepo.MarkLatestConverted(locked.PartnerID, locked.ID); err != nil {
				return err
			}
		}
		sale = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	prizes, err := uc.prizeMatches(sale.RaffleID, numbers)
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("session_id", sessionID).
		Int("numbers", len(numbers)).
		Msg("pagamento confirmado")
	return &dto.VerifyPaymentResponse{Paid: true, Status: status.Status, Numbers: numbers, Prizes: prizes}, nil
}

func (uc *CheckoutUseCase) settledResponse(sale *entity.Sale) (*dto.VerifyPaymentResponse, error) {
	rows, err := uc.numberRepo.ListBySale(sale.ID)
	if err != nil {
		return nil, err
	}
	numbers := make([]int, 0, len(rows))
	for _, row := range rows {
		numbers = append(numbers, row.Number)
	}
	prizes, err := uc.prizeMatches(sale.RaffleID, numbers)
	if err != nil {
		return nil, err
	}
	return &dto.VerifyPaymentResponse{Paid: true, Status: "paid", Numbers: numbers, Prizes: prizes}, nil
}

func (uc *CheckoutUseCase) prizeMatches(raffleID string, numbers []int) ([]dto.PrizeMatch, error) {
	matches, err := uc.winningRepo.FindMatches(raffleID, numbers)
	if err != nil {
		return nil, err
	}
	prizes := make([]dto.PrizeMatch, 0, len(matches))
	for _, m := range matches {
		prizes = append(prizes, dto.PrizeMatch{Number: m.Number, PrizeName: m.PrizeName})
	}
	return prizes, nil
}
