package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// RaffleReport dados consolidados do relatório financeiro de uma rifa.
// Os totais consideram apenas vendas concluídas.
type RaffleReport struct {
	Raffle          *entity.Raffle
	Sales           []*entity.Sale
	SoldNumbers     int
	CompletedSales  int
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	GeneratedAt     time.Time
}

// PDFGenerator é a porta para o gerador de PDF do relatório.
type PDFGenerator interface {
	RaffleSalesPDF(report *RaffleReport) ([]byte, error)
}
