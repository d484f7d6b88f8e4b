package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest pedido de saque do parceiro.
// Method "pix" exige PixKey; "bank" exige os dados bancários.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PixKey      string          `json:"pix_key"`
	BankName    string          `json:"bank_name"`
	BankAgency  string          `json:"bank_agency"`
	BankAccount string          `json:"bank_account"`
}

// ReviewWithdrawalRequest transição de status pelo admin.
// Status destino: approved, rejected (com Reason), processed, failed.
type ReviewWithdrawalRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// WithdrawalResponse saque.
type WithdrawalResponse struct {
	ID           string          `json:"id"`
	PartnerID    string          `json:"partner_id"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	PixKey       string          `json:"pix_key,omitempty"`
	BankName     string          `json:"bank_name,omitempty"`
	BankAgency   string          `json:"bank_agency,omitempty"`
	BankAccount  string          `json:"bank_account,omitempty"`
	Status       string          `json:"status"`
	RejectReason string          `json:"reject_reason,omitempty"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BalanceResponse saldo disponível recalculado do histórico.
type BalanceResponse struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
}
