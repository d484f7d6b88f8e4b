package sales

import (
	"context"

	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação com repositórios atados à tx.
// É a fronteira que fecha a corrida da alocação de números: a rifa é
// bloqueada (FOR UPDATE) e os inserts acontecem antes do commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		raffleRepo repository.RaffleRepository,
		saleRepo repository.SaleRepository,
		numberRepo repository.NumberRepository,
		clickRepo repository.ClickRepository,
		winningRepo repository.WinningNumberRepository,
	) error) error
}
