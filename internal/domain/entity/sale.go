package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
	SaleStatusRefunded  = "refunded"
)

// Métodos de pagamento.
const (
	PaymentMethodPix  = "pix"
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Sale registra a compra de números de uma rifa. O comprador é identificado
// por contato (nome/WhatsApp/cidade), não precisa ter perfil cadastrado.
// PartnerID aponta o parceiro atribuído (link de afiliado ou venda em campo).
// Invariante: TotalAmount = UnitPrice * Quantity.
type Sale struct {
	ID                string
	RaffleID          string
	PartnerID         string // vazio = sem atribuição
	CustomerName      string
	CustomerWhatsApp  string
	CustomerCity      string
	Quantity          int
	UnitPrice         decimal.Decimal
	TotalAmount       decimal.Decimal
	CommissionAmount  decimal.Decimal
	Status            string
	PaymentMethod     string
	DoorToDoor        bool   // venda porta a porta registrada em campo
	CheckoutSessionID string // sessão do provedor de pagamento (venda online)
	CancelReason      string
	SettledAt         *time.Time // quando a venda porta a porta foi acertada
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
