package sales

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

// AllocateNumbersUseCase reserva números livres de uma rifa de forma
// transacional: a linha da rifa é bloqueada (SELECT FOR UPDATE) antes da
// leitura dos números usados, então dois compradores simultâneos nunca
// enxergam o mesmo conjunto livre. A constraint única em (raffle_id, number)
// fica como segunda barreira.
type AllocateNumbersUseCase struct {
	txRunner TxRunner
}

// NewAllocateNumbersUseCase constrói o caso de uso.
func NewAllocateNumbersUseCase(txRunner TxRunner) *AllocateNumbersUseCase {
	return &AllocateNumbersUseCase{txRunner: txRunner}
}

// Allocate reserva quantity números para a venda em uma transação própria.
func (uc *AllocateNumbersUseCase) Allocate(ctx context.Context, raffleID, saleID string, quantity int) ([]int, error) {
	var numbers []int
	err := uc.txRunner.Run(ctx, func(
		raffleRepo repository.RaffleRepository,
		_ repository.SaleRepository,
		numberRepo repository.NumberRepository,
		_ repository.ClickRepository,
		_ repository.WinningNumberRepository,
	) error {
		var err error
		numbers, err = uc.AllocateInTx(raffleRepo, numberRepo, raffleID, saleID, quantity, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// AllocateInTx executa a reserva usando repositórios já atados à transação do
// chamador (confirmação de pagamento e registro porta a porta compõem a
// alocação com a finalização da venda no mesmo commit).
func (uc *AllocateNumbersUseCase) AllocateInTx(
	raffleRepo repository.RaffleRepository,
	numberRepo repository.NumberRepository,
	raffleID, saleID string,
	quantity int,
	now time.Time,
) ([]int, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	// Lock da rifa: serializa a alocação entre compradores concorrentes
	raffle, err := raffleRepo.GetByIDForUpdate(raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrNotFound
	}
	if raffle.Status != entity.RaffleStatusActive {
		return nil, domain.ErrRaffleNotActive
	}

	used, err := numberRepo.UsedNumbers(raffleID)
	if err != nil {
		return nil, err
	}
	usedSet := make(map[int]struct{}, len(used))
	for _, n := range used {
		usedSet[n] = struct{}{}
	}

	free := make([]int, 0, raffle.TotalNumbers-len(used))
	for n := 1; n <= raffle.TotalNumbers; n++ {
		if _, taken := usedSet[n]; !taken {
			free = append(free, n)
		}
	}
	if len(free) < quantity {
		return nil, &domain.InsufficientNumbersError{Available: len(free)}
	}

	rand.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	picked := free[:quantity]

	rows := make([]*entity.PurchasedNumber, 0, quantity)
	for _, n := range picked {
		rows = append(rows, &entity.PurchasedNumber{
			ID:        uuid.New().String(),
			RaffleID:  raffleID,
			SaleID:    saleID,
			Number:    n,
			CreatedAt: now,
		})
	}
	if err := numberRepo.BulkCreate(rows); err != nil {
		return nil, err
	}
	return picked, nil
}
