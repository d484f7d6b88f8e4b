package dto

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// Mapeadores entidade -> resposta, compartilhados pelos handlers.

// FromProfile converte o perfil omitindo campos sensíveis.
func FromProfile(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		WhatsApp:  p.WhatsApp,
		City:      p.City,
		Slug:      p.Slug,
		Role:      p.Role,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromSale converte a venda; numbers pode ser nil quando ainda não alocados.
func FromSale(s *entity.Sale, numbers []int) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		RaffleID:         s.RaffleID,
		PartnerID:        s.PartnerID,
		CustomerName:     s.CustomerName,
		CustomerWhatsApp: s.CustomerWhatsApp,
		CustomerCity:     s.CustomerCity,
		Quantity:         s.Quantity,
		UnitPrice:        s.UnitPrice,
		TotalAmount:      s.TotalAmount,
		CommissionAmount: s.CommissionAmount,
		Status:           s.Status,
		PaymentMethod:    s.PaymentMethod,
		DoorToDoor:       s.DoorToDoor,
		CancelReason:     s.CancelReason,
		SettledAt:        s.SettledAt,
		Numbers:          numbers,
		CreatedAt:        s.CreatedAt,
	}
}

// FromRaffle converte a rifa com a contagem de vendidos calculada fora.
func FromRaffle(r *entity.Raffle, soldNumbers int) RaffleResponse {
	return RaffleResponse{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		TotalNumbers:        r.TotalNumbers,
		SoldNumbers:         soldNumbers,
		PricePerNumber:      r.PricePerNumber,
		DiscountPrice:       r.DiscountPrice,
		DiscountMinQuantity: r.DiscountMinQuantity,
		CommissionRate:      r.CommissionRate,
		Status:              r.Status,
		DrawDate:            r.DrawDate,
		CreatedAt:           r.CreatedAt,
	}
}

// FromWithdrawal converte o saque.
func FromWithdrawal(w *entity.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:           w.ID,
		PartnerID:    w.PartnerID,
		Amount:       w.Amount,
		Method:       w.Method,
		PixKey:       w.PixKey,
		BankName:     w.BankName,
		BankAgency:   w.BankAgency,
		BankAccount:  w.BankAccount,
		Status:       w.Status,
		RejectReason: w.RejectReason,
		ProcessedAt:  w.ProcessedAt,
		CreatedAt:    w.CreatedAt,
	}
}

// FromClick converte o clique de afiliado.
func FromClick(c *entity.PartnerClick) ClickResponse {
	return ClickResponse{
		ID:        c.ID,
		PartnerID: c.PartnerID,
		Referrer:  c.Referrer,
		Converted: c.Converted,
		SaleID:    c.SaleID,
		CreatedAt: c.CreatedAt,
	}
}

// FromWinningNumber converte o número premiado.
func FromWinningNumber(wn *entity.WinningNumber) WinningNumberResponse {
	return WinningNumberResponse{
		ID:               wn.ID,
		RaffleID:         wn.RaffleID,
		Number:           wn.Number,
		PrizeName:        wn.PrizeName,
		PrizeDescription: wn.PrizeDescription,
	}
}
