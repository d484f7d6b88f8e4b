package entity

import "time"

// PurchasedNumber é um número vendido de uma rifa, uma linha por número.
// O par (RaffleID, Number) é único — constraint no banco; a reserva
// transacional do alocador impede a dupla venda antes do insert.
// Imutável depois de criado, exceto IsWinner marcado no sorteio.
type PurchasedNumber struct {
	ID        string
	RaffleID  string
	SaleID    string
	Number    int
	IsWinner  bool
	CreatedAt time.Time
}
