package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de rifa.
const (
	RaffleStatusActive    = "active"
	RaffleStatusFinished  = "finished"
	RaffleStatusCancelled = "cancelled"
)

// Raffle representa um sorteio com um pool fixo de números compráveis.
// Invariantes: TotalNumbers > 0, PricePerNumber > 0.
// DiscountPrice se aplica quando a quantidade comprada >= DiscountMinQuantity.
type Raffle struct {
	ID                  string
	Title               string
	Description         string
	TotalNumbers        int
	PricePerNumber      decimal.Decimal
	DiscountPrice       decimal.Decimal
	DiscountMinQuantity int
	CommissionRate      decimal.Decimal // percentual, ex. 30 = 30%
	Status              string
	DrawDate            time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasDiscount indica se a rifa tem preço com desconto configurado.
func (r *Raffle) HasDiscount() bool {
	return r.DiscountMinQuantity > 0 && r.DiscountPrice.IsPositive()
}
