package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRaffleRequest criação de rifa pelo admin.
type CreateRaffleRequest struct {
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	TotalNumbers        int             `json:"total_numbers"`
	PricePerNumber      decimal.Decimal `json:"price_per_number"`
	DiscountPrice       decimal.Decimal `json:"discount_price"`
	DiscountMinQuantity int             `json:"discount_min_quantity"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	DrawDate            time.Time       `json:"draw_date"`
}

// UpdateRaffleRequest edição dos campos de preço/desconto/comissão e datas.
type UpdateRaffleRequest struct {
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	PricePerNumber      decimal.Decimal `json:"price_per_number"`
	DiscountPrice       decimal.Decimal `json:"discount_price"`
	DiscountMinQuantity int             `json:"discount_min_quantity"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	DrawDate            time.Time       `json:"draw_date"`
}

// RaffleResponse rifa com contagem de números vendidos.
type RaffleResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	TotalNumbers        int             `json:"total_numbers"`
	SoldNumbers         int             `json:"sold_numbers"`
	PricePerNumber      decimal.Decimal `json:"price_per_number"`
	DiscountPrice       decimal.Decimal `json:"discount_price"`
	DiscountMinQuantity int             `json:"discount_min_quantity"`
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	Status              string          `json:"status"`
	DrawDate            time.Time       `json:"draw_date"`
	CreatedAt           time.Time       `json:"created_at"`
}

// WinningNumberRequest cadastro de número premiado.
type WinningNumberRequest struct {
	Number           int    `json:"number"`
	PrizeName        string `json:"prize_name"`
	PrizeDescription string `json:"prize_description"`
}

// WinningNumberResponse número premiado.
type WinningNumberResponse struct {
	ID               string `json:"id"`
	RaffleID         string `json:"raffle_id"`
	Number           int    `json:"number"`
	PrizeName        string `json:"prize_name"`
	PrizeDescription string `json:"prize_description,omitempty"`
}
