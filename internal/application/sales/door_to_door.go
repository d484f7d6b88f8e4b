package sales

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// DoorToDoorUseCase cobre a venda em campo: o parceiro registra a venda na
// hora (números alocados imediatamente, pagamento em dinheiro ou PIX fora da
// plataforma) e depois acerta ou cancela com o admin.
type DoorToDoorUseCase struct {
	txRunner    TxRunner
	profileRepo repository.ProfileRepository
	allocator   *AllocateNumbersUseCase
	log         *logger.Logger
}

// NewDoorToDoorUseCase constrói o caso de uso.
func NewDoorToDoorUseCase(
	txRunner TxRunner,
	profileRepo repository.ProfileRepository,
	allocator *AllocateNumbersUseCase,
	log *logger.Logger,
) *DoorToDoorUseCase {
	return &DoorToDoorUseCase{
		txRunner:    txRunner,
		profileRepo: profileRepo,
		allocator:   allocator,
		log:         log,
	}
}

// Register cria a venda porta a porta do parceiro autenticado. A criação da
// venda e a alocação dos números acontecem na mesma transação: se a rifa não
// tiver números livres suficientes, nada é gravado.
func (uc *DoorToDoorUseCase) Register(ctx context.Context, partnerID string, in dto.CreateSaleRequest) (*entity.Sale, []int, error) {
	errs := in.Validate()
	if in.PaymentMethod != entity.PaymentMethodPix && in.PaymentMethod != entity.PaymentMethodCash {
		errs = append(errs, dto.FieldError{Field: "payment_method", Message: "método deve ser pix ou cash"})
	}
	if len(errs) > 0 {
		return nil, nil, &ValidationError{Fields: errs}
	}

	partner, err := uc.profileRepo.GetByID(partnerID)
	if err != nil {
		return nil, nil, err
	}
	if !partner.IsActivePartner() {
		return nil, nil, domain.ErrForbidden
	}

	var (
		sale    *entity.Sale
		numbers []int
	)
	err = uc.txRunner.Run(ctx, func(
		raffleRepo repository.RaffleRepository,
		saleRepo repository.SaleRepository,
		numberRepo repository.NumberRepository,
		_ repository.ClickRepository,
		_ repository.WinningNumberRepository,
	) error {
		now := time.Now()
		r, err := raffleRepo.GetByIDForUpdate(in.RaffleID)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		if r.Status != entity.RaffleStatusActive {
			return domain.ErrRaffleNotActive
		}

		sale = NewSale(r, partner, in, true, now)
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		numbers, err = uc.allocator.AllocateInTx(raffleRepo, numberRepo, r.ID, sale.ID, in.Quantity, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("partner_id", partnerID).
		Int("quantity", in.Quantity).
		Msg("venda porta a porta registrada")
	return sale, numbers, nil
}

// Settle acerta a venda porta a porta (dinheiro entregue): pending -> completed.
// Permitido ao parceiro dono da venda e ao admin.
func (uc *DoorToDoorUseCase) Settle(ctx context.Context, actorID, actorRole, saleID string) (*entity.Sale, error) {
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		_ repository.RaffleRepository,
		saleRepo repository.SaleRepository,
		_ repository.NumberRepository,
		_ repository.ClickRepository,
		_ repository.WinningNumberRepository,
	) error {
		var err error
		sale, err = uc.lockPendingSale(saleRepo, actorID, actorRole, saleID)
		if err != nil {
			return err
		}
		now := time.Now()
		sale.Status = entity.SaleStatusCompleted
		sale.SettledAt = &now
		sale.UpdatedAt = now
		return saleRepo.Update(sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", saleID).Str("by", actorID).Msg("venda porta a porta acertada")
	return sale, nil
}

// Cancel cancela a venda porta a porta e libera os números reservados.
// Reason é obrigatório e fica registrado na venda.
func (uc *DoorToDoorUseCase) Cancel(ctx context.Context, actorID, actorRole, saleID, reason string) (*entity.Sale, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		_ repository.RaffleRepository,
		saleRepo repository.SaleRepository,
		numberRepo repository.NumberRepository,
		_ repository.ClickRepository,
		_ repository.WinningNumberRepository,
	) error {
		var err error
		sale, err = uc.lockPendingSale(saleRepo, actorID, actorRole, saleID)
		if err != nil {
			return err
		}
		sale.Status = entity.SaleStatusCancelled
		sale.CancelReason = reason
		sale.UpdatedAt = time.Now()
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		// Devolve os números ao pool da rifa
		return numberRepo.DeleteBySale(sale.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", saleID).Str("by", actorID).Str("reason", reason).Msg("venda porta a porta cancelada")
	return sale, nil
}

// lockPendingSale bloqueia a venda e valida que é porta a porta, pendente e
// que o ator pode mexer nela (dono ou admin).
func (uc *DoorToDoorUseCase) lockPendingSale(saleRepo repository.SaleRepository, actorID, actorRole, saleID string) (*entity.Sale, error) {
	sale, err := saleRepo.GetByIDForUpdate(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || !sale.DoorToDoor {
		return nil, domain.ErrNotFound
	}
	if actorRole != entity.RoleAdmin && sale.PartnerID != actorID {
		return nil, domain.ErrForbidden
	}
	if sale.Status != entity.SaleStatusPending {
		return nil, domain.ErrConflict
	}
	return sale, nil
}
