package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackClickRequest visita a um link de afiliado (/p/<slug>).
type TrackClickRequest struct {
	PartnerSlug string `json:"partner_slug"`
	Referrer    string `json:"referrer"`
	UserAgent   string `json:"user_agent"`
}

// ClickResponse clique registrado.
type ClickResponse struct {
	ID        string    `json:"id"`
	PartnerID string    `json:"partner_id"`
	Referrer  string    `json:"referrer,omitempty"`
	Converted bool      `json:"converted"`
	SaleID    string    `json:"sale_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PartnerStatsResponse painel do parceiro: cliques, conversões, vendas,
// comissão acumulada e saldo disponível para saque.
type PartnerStatsResponse struct {
	Clicks           int             `json:"clicks"`
	Conversions      int             `json:"conversions"`
	SalesCount       int             `json:"sales_count"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}
