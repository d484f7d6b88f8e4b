package wallet

import (
	"context"

	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação com repositórios atados à tx.
// O pedido de saque bloqueia a linha do parceiro (FOR UPDATE) para que dois
// pedidos simultâneos não passem ambos na checagem de saldo.
type TxRunner interface {
	RunWallet(ctx context.Context, fn func(
		profileRepo repository.ProfileRepository,
		saleRepo repository.SaleRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error) error
}
