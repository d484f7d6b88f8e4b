// Package pdf implementa a geração do relatório financeiro de rifa em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título da rifa │ data de geração                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: números vendidos / vendas / receita / comissões    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Cliente | Cidade | Qtd | Total | Comissão   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: receita e comissões das vendas concluídas          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/rifa-pro/internal/application/reports"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RaffleSalesPDF gera o PDF do relatório e devolve seus bytes.
func (g *MarotoReportGenerator) RaffleSalesPDF(report *reports.RaffleReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Rifa", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableSaleRows(report.Sales) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título da rifa (esq) e data de geração (dir).
func headerRow(report *reports.RaffleReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Raffle.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sorteio: "+report.Raffle.DrawDate.Format("02/01/2006"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores e totais principais.
func summaryRow(report *reports.RaffleReport) core.Row {
	return row.New(10).Add(
		summaryCol("Números vendidos", fmt.Sprintf("%d / %d", report.SoldNumbers, report.Raffle.TotalNumbers)),
		summaryCol("Vendas concluídas", fmt.Sprintf("%d", report.CompletedSales)),
		summaryCol("Receita", formatMoney(report.TotalRevenue)),
		summaryCol("Comissões", formatMoney(report.TotalCommission)),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Size: 10, Style: fontstyle.Bold, Top: 5}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("Data", header)),
		col.New(3).Add(text.New("Cliente", header)),
		col.New(2).Add(text.New("Cidade", header)),
		col.New(1).Add(text.New("Qtd", headerRight)),
		col.New(1).Add(text.New("Total", headerRight)),
		col.New(1).Add(text.New("Comissão", headerRight)),
		col.New(2).Add(text.New("Status", header)),
	)
}

func tableSaleRows(sales []*entity.Sale) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	rows := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(s.CreatedAt.Format("02/01/2006"), cell)),
			col.New(3).Add(text.New(s.CustomerName, cell)),
			col.New(2).Add(text.New(s.CustomerCity, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.Quantity), cellRight)),
			col.New(1).Add(text.New(formatMoney(s.TotalAmount), cellRight)),
			col.New(1).Add(text.New(formatMoney(s.CommissionAmount), cellRight)),
			col.New(2).Add(text.New(statusLabel(s), cell)),
		))
	}
	return rows
}

func totalsRow(report *reports.RaffleReport) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("RECEITA TOTAL", props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Right}),
			text.New(formatMoney(report.TotalRevenue), props.Text{Size: 11, Style: fontstyle.Bold, Top: 4, Align: align.Right}),
		),
		col.New(3).Add(
			text.New("COMISSÕES", props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Right}),
			text.New(formatMoney(report.TotalCommission), props.Text{Size: 11, Style: fontstyle.Bold, Top: 4, Align: align.Right}),
		),
	)
}

func statusLabel(s *entity.Sale) string {
	label := map[string]string{
		entity.SaleStatusPending:   "pendente",
		entity.SaleStatusCompleted: "concluída",
		entity.SaleStatusCancelled: "cancelada",
		entity.SaleStatusRefunded:  "reembolsada",
	}[s.Status]
	if label == "" {
		label = s.Status
	}
	if s.DoorToDoor {
		label += " (campo)"
	}
	return label
}

func formatMoney(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
