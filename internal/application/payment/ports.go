package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// SessionRequest dados enviados ao provedor para abrir uma sessão de
// checkout PIX. SaleID vai como referência externa para conciliação.
type SessionRequest struct {
	SaleID           string
	Description      string
	Amount           decimal.Decimal
	CustomerName     string
	CustomerWhatsApp string
	SuccessURL       string
	CancelURL        string
}

// Session sessão criada no provedor.
type Session struct {
	ID  string
	URL string
}

// SessionStatus situação da sessão consultada no provedor.
type SessionStatus struct {
	ID     string
	Status string
	Paid   bool
}

// CheckoutProvider é a porta para o provedor de pagamento PIX.
// Erros do provedor sobem intactos; quem decide re-tentar é o cliente.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
}
