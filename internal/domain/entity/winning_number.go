package entity

import "time"

// WinningNumber é um número premiado de uma rifa, cadastrado pelo admin
// antes do sorteio com o prêmio correspondente.
type WinningNumber struct {
	ID               string
	RaffleID         string
	Number           int
	PrizeName        string
	PrizeDescription string
	CreatedAt        time.Time
}
