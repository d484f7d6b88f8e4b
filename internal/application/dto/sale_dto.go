package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// whatsappRe aceita o formato brasileiro com DDD, com ou sem +55 e separadores.
// Ex: "+55 11 91234-5678", "11912345678", "(11) 91234-5678".
var whatsappRe = regexp.MustCompile(`^(\+?55)?\s*\(?\d{2}\)?\s*9?\d{4}-?\d{4}$`)

// CreateSaleRequest venda de números: checkout online ou porta a porta.
// PartnerSlug atribui a venda ao parceiro do link de afiliado.
type CreateSaleRequest struct {
	RaffleID         string `json:"raffle_id"`
	PartnerSlug      string `json:"partner_slug"`
	CustomerName     string `json:"customer_name"`
	CustomerWhatsApp string `json:"customer_whatsapp"`
	CustomerCity     string `json:"customer_city"`
	Quantity         int    `json:"quantity"`
	PaymentMethod    string `json:"payment_method"`
}

// Validate checa os campos do formulário e devolve a lista de erros por
// campo. Lista vazia = entrada válida.
func (r CreateSaleRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customer_name", Message: "nome é obrigatório"})
	}
	if !whatsappRe.MatchString(strings.TrimSpace(r.CustomerWhatsApp)) {
		errs = append(errs, FieldError{Field: "customer_whatsapp", Message: "WhatsApp inválido (use DDD + número)"})
	}
	if strings.TrimSpace(r.CustomerCity) == "" {
		errs = append(errs, FieldError{Field: "customer_city", Message: "cidade é obrigatória"})
	}
	if r.Quantity < 1 {
		errs = append(errs, FieldError{Field: "quantity", Message: "quantidade mínima é 1"})
	}
	if r.Quantity > 1000 {
		errs = append(errs, FieldError{Field: "quantity", Message: "quantidade máxima por compra é 1000"})
	}
	return errs
}

// SaleResponse venda com os números reservados (quando já alocados).
type SaleResponse struct {
	ID               string          `json:"id"`
	RaffleID         string          `json:"raffle_id"`
	PartnerID        string          `json:"partner_id,omitempty"`
	CustomerName     string          `json:"customer_name"`
	CustomerWhatsApp string          `json:"customer_whatsapp"`
	CustomerCity     string          `json:"customer_city"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	DoorToDoor       bool            `json:"door_to_door"`
	CancelReason     string          `json:"cancel_reason,omitempty"`
	SettledAt        *time.Time      `json:"settled_at,omitempty"`
	Numbers          []int           `json:"numbers,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PatchDoorToDoorRequest acerto ou cancelamento de venda porta a porta.
// Action: "settle" | "cancel"; Reason obrigatório no cancelamento.
type PatchDoorToDoorRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}
