package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de saque.
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusRejected  = "rejected"
	WithdrawalStatusProcessed = "processed"
	WithdrawalStatusFailed    = "failed"
)

// Métodos de saque.
const (
	WithdrawalMethodPix  = "pix"
	WithdrawalMethodBank = "bank"
)

// Withdrawal é o pedido de saque de comissões de um parceiro.
// Criado pelo parceiro; as transições de status são exclusivas do admin.
type Withdrawal struct {
	ID           string
	PartnerID    string
	Amount       decimal.Decimal
	Method       string
	PixKey       string // quando Method = pix
	BankName     string // quando Method = bank
	BankAgency   string
	BankAccount  string
	Status       string
	RejectReason string
	ProcessedBy  string // admin que processou/rejeitou
	ProcessedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// withdrawalTransitions define a máquina de estados do saque:
// pending -> approved | rejected; approved -> processed | failed.
// rejected, processed e failed são terminais.
var withdrawalTransitions = map[string][]string{
	WithdrawalStatusPending:  {WithdrawalStatusApproved, WithdrawalStatusRejected},
	WithdrawalStatusApproved: {WithdrawalStatusProcessed, WithdrawalStatusFailed},
}

// CanTransition indica se a mudança de status é permitida pela máquina de estados.
func (w *Withdrawal) CanTransition(to string) bool {
	for _, allowed := range withdrawalTransitions[w.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CountsAgainstBalance indica se o saque reduz o saldo disponível reportado
// (processados e aprovados; pendentes contam apenas na checagem de cobertura).
func (w *Withdrawal) CountsAgainstBalance() bool {
	return w.Status == WithdrawalStatusProcessed || w.Status == WithdrawalStatusApproved
}
