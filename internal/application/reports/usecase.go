// Package reports monta o relatório financeiro de rifa do back-office.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// pageSize lote de leitura das vendas ao montar o relatório.
const pageSize = 500

// UseCase gera o relatório financeiro consolidado de uma rifa.
type UseCase struct {
	raffleRepo repository.RaffleRepository
	saleRepo   repository.SaleRepository
	numberRepo repository.NumberRepository
	generator  PDFGenerator
	log        *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	raffleRepo repository.RaffleRepository,
	saleRepo repository.SaleRepository,
	numberRepo repository.NumberRepository,
	generator PDFGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		raffleRepo: raffleRepo,
		saleRepo:   saleRepo,
		numberRepo: numberRepo,
		generator:  generator,
		log:        log,
	}
}

// Build consolida as vendas da rifa em um RaffleReport.
func (uc *UseCase) Build(_ context.Context, raffleID string) (*RaffleReport, error) {
	r, err := uc.raffleRepo.GetByID(raffleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	var all []*entity.Sale
	for offset := 0; ; offset += pageSize {
		batch, err := uc.saleRepo.ListByRaffle(raffleID, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < pageSize {
			break
		}
	}

	sold, err := uc.numberRepo.CountByRaffle(raffleID)
	if err != nil {
		return nil, err
	}

	report := &RaffleReport{
		Raffle:          r,
		Sales:           all,
		SoldNumbers:     sold,
		TotalRevenue:    decimal.Zero,
		TotalCommission: decimal.Zero,
		GeneratedAt:     time.Now(),
	}
	for _, s := range all {
		if s.Status != entity.SaleStatusCompleted {
			continue
		}
		report.CompletedSales++
		report.TotalRevenue = report.TotalRevenue.Add(s.TotalAmount)
		report.TotalCommission = report.TotalCommission.Add(s.CommissionAmount)
	}
	return report, nil
}

// GeneratePDF monta o relatório e devolve o PDF pronto para download.
func (uc *UseCase) GeneratePDF(ctx context.Context, raffleID string) ([]byte, error) {
	report, err := uc.Build(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.RaffleSalesPDF(report)
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("raffle_id", raffleID).
		Int("sales", len(report.Sales)).
		Msg("relatório de rifa gerado")
	return pdf, nil
}
