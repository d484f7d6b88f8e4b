package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

// Garante que TxRunner implementa sales.TxRunner e wallet.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ wallet.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação de vendas (alocação de números, checkout,
// porta a porta), executa fn com repos atados à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	raffleRepo repository.RaffleRepository,
	saleRepo repository.SaleRepository,
	numberRepo repository.NumberRepository,
	clickRepo repository.ClickRepository,
	winningRepo repository.WinningNumberRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	raffleRepo := NewRaffleRepository(tx)
	saleRepo := NewSaleRepository(tx)
	numberRepo := NewNumberRepository(tx)
	clickRepo := NewClickRepository(tx)
	winningRepo := NewWinningNumberRepository(tx)

	if err := fn(raffleRepo, saleRepo, numberRepo, clickRepo, winningRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunWallet inicia uma transação de carteira (pedido de saque): perfil,
// vendas e saques do parceiro na mesma tx.
func (r *TxRunner) RunWallet(ctx context.Context, fn func(
	profileRepo repository.ProfileRepository,
	saleRepo repository.SaleRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	profileRepo := NewProfileRepository(tx)
	saleRepo := NewSaleRepository(tx)
	withdrawalRepo := NewWithdrawalRepository(tx)

	if err := fn(profileRepo, saleRepo, withdrawalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
