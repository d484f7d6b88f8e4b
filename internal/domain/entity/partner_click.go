package entity

import "time"

// PartnerClick registra uma visita ao link de afiliado de um parceiro.
// Converted é marcado uma única vez quando o clique gera uma venda.
type PartnerClick struct {
	ID        string
	PartnerID string
	Referrer  string
	UserAgent string
	Converted bool
	SaleID    string // venda gerada pelo clique, se houver
	CreatedAt time.Time
}
