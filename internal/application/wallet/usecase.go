package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// UseCase concentra o saldo do parceiro e os pedidos de saque.
//
// O saldo nunca é uma coluna: é sempre recalculado do histórico como
// comissões de vendas concluídas menos saques processados e aprovados.
// Saques pendentes não reduzem o saldo exibido, mas contam na checagem de
// cobertura de um novo pedido.
type UseCase struct {
	txRunner       TxRunner
	profileRepo    repository.ProfileRepository
	saleRepo       repository.SaleRepository
	withdrawalRepo repository.WithdrawalRepository
	minAmount      decimal.Decimal
	maxAmount      decimal.Decimal
	log            *logger.Logger
}

// NewUseCase constrói o caso de uso com os limites de saque da configuração.
func NewUseCase(
	txRunner TxRunner,
	profileRepo repository.ProfileRepository,
	saleRepo repository.SaleRepository,
	withdrawalRepo repository.WithdrawalRepository,
	minAmount, maxAmount decimal.Decimal,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		profileRepo:    profileRepo,
		saleRepo:       saleRepo,
		withdrawalRepo: withdrawalRepo,
		minAmount:      minAmount,
		maxAmount:      maxAmount,
		log:            log,
	}
}

// AvailableBalance recalcula o saldo disponível do parceiro.
func (uc *UseCase) AvailableBalance(_ context.Context, partnerID string) (decimal.Decimal, error) {
	return availableBalance(uc.saleRepo, uc.withdrawalRepo, partnerID)
}

func availableBalance(saleRepo repository.SaleRepository, withdrawalRepo repository.WithdrawalRepository, partnerID string) (decimal.Decimal, error) {
	earned, err := saleRepo.SumCommissionByPartner(partnerID)
	if err != nil {
		return decimal.Zero, err
	}
	deducted, err := withdrawalRepo.SumByPartner(partnerID,
		entity.WithdrawalStatusProcessed, entity.WithdrawalStatusApproved)
	if err != nil {
		return decimal.Zero, err
	}
	return earned.Sub(deducted), nil
}

// RequestWithdrawal cria um pedido de saque pendente. A linha do parceiro é
// bloqueada (FOR UPDATE) para que dois pedidos simultâneos não passem ambos
// na checagem de cobertura; a cobertura conta também os pedidos pendentes.
func (uc *UseCase) RequestWithdrawal(ctx context.Context, partnerID string, in dto.CreateWithdrawalRequest) (*entity.Withdrawal, error) {
	if in.Amount.LessThan(uc.minAmount) {
		return nil, fmt.Errorf("valor mínimo de saque é R$ %s: %w", uc.minAmount.StringFixed(2), domain.ErrInvalidInput)
	}
	if in.Amount.GreaterThan(uc.maxAmount) {
		return nil, fmt.Errorf("valor máximo de saque é R$ %s: %w", uc.maxAmount.StringFixed(2), domain.ErrInvalidInput)
	}
	switch in.Method {
	case entity.WithdrawalMethodPix:
		// chave PIX pode vir do perfil; validada dentro da transação
	case entity.WithdrawalMethodBank:
		if strings.TrimSpace(in.BankName) == "" || strings.TrimSpace(in.BankAgency) == "" || strings.TrimSpace(in.BankAccount) == "" {
			return nil, fmt.Errorf("dados bancários incompletos: %w", domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("método de saque deve ser pix ou bank: %w", domain.ErrInvalidInput)
	}

	var withdrawal *entity.Withdrawal
	err := uc.txRunner.RunWallet(ctx, func(
		profileRepo repository.ProfileRepository,
		saleRepo repository.SaleRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		partner, err := profileRepo.GetByIDForUpdate(partnerID)
		if err != nil {
			return err
		}
		if !partner.IsActivePartner() {
			return domain.ErrForbidden
		}

		pixKey := in.PixKey
		if in.Method == entity.WithdrawalMethodPix && pixKey == "" {
			pixKey = partner.PixKey
		}
		if in.Method == entity.WithdrawalMethodPix && pixKey == "" {
			return fmt.Errorf("chave PIX é obrigatória: %w", domain.ErrInvalidInput)
		}

		earned, err := saleRepo.SumCommissionByPartner(partnerID)
		if err != nil {
			return err
		}
		// Cobertura: pendentes também reservam saldo, ainda que não
		// apareçam no saldo exibido.
		reserved, err := withdrawalRepo.SumByPartner(partnerID,
			entity.WithdrawalStatusPending, entity.WithdrawalStatusApproved, entity.WithdrawalStatusProcessed)
		if err != nil {
			return err
		}
		if in.Amount.GreaterThan(earned.Sub(reserved)) {
			pending, err := withdrawalRepo.SumByPartner(partnerID, entity.WithdrawalStatusPending)
			if err != nil {
				return err
			}
			return &domain.InsufficientBalanceError{Available: earned.Sub(reserved).Add(pending)}
		}

		now := time.Now()
		withdrawal = &entity.Withdrawal{
			ID:          uuid.New().String(),
			PartnerID:   partnerID,
			Amount:      in.Amount,
			Method:      in.Method,
			PixKey:      pixKey,
			BankName:    in.BankName,
			BankAgency:  in.BankAgency,
			BankAccount: in.BankAccount,
			Status:      entity.WithdrawalStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return withdrawalRepo.Create(withdrawal)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("withdrawal_id", withdrawal.ID).
		Str("partner_id", partnerID).
		Str("amount", withdrawal.Amount.StringFixed(2)).
		Str("method", withdrawal.Method).
		Msg("saque solicitado")
	return withdrawal, nil
}

// ListByPartner lista os saques do parceiro autenticado.
func (uc *UseCase) ListByPartner(_ context.Context, partnerID string, page dto.PageRequest) ([]*entity.Withdrawal, error) {
	page.DefaultPage()
	return uc.withdrawalRepo.ListByPartner(partnerID, page.Limit, page.Offset)
}

// ListByStatus lista saques para a fila de revisão do admin.
func (uc *UseCase) ListByStatus(_ context.Context, status string, page dto.PageRequest) ([]*entity.Withdrawal, error) {
	page.DefaultPage()
	return uc.withdrawalRepo.ListByStatus(status, page.Limit, page.Offset)
}
