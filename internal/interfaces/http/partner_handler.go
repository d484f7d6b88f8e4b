package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/partner"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
)

// PartnerHandler trata o portal do parceiro autenticado.
type PartnerHandler struct {
	uc     *partner.UseCase
	wallet *wallet.UseCase
}

// NewPartnerHandler constrói o handler.
func NewPartnerHandler(uc *partner.UseCase, wallet *wallet.UseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc, wallet: wallet}
}

// Stats GET /api/partner/stats
func (h *PartnerHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.uc.Stats(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Balance GET /api/partner/balance
func (h *PartnerHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.wallet.AvailableBalance(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{AvailableBalance: balance})
}

// ListSales GET /api/partner/sales?limit=20&offset=0
func (h *PartnerHandler) ListSales(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.uc.ListSales(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.FromSale(s, nil))
	}
	return c.JSON(out)
}

// ListClicks GET /api/partner/clicks?limit=20&offset=0
func (h *PartnerHandler) ListClicks(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.uc.ListClicks(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ClickResponse, 0, len(list))
	for _, click := range list {
		out = append(out, dto.FromClick(click))
	}
	return c.JSON(out)
}

// RequestWithdrawal POST /api/partner/withdrawals
func (h *PartnerHandler) RequestWithdrawal(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	w, err := h.wallet.RequestWithdrawal(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromWithdrawal(w))
}

// ListWithdrawals GET /api/partner/withdrawals?limit=20&offset=0
func (h *PartnerHandler) ListWithdrawals(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.wallet.ListByPartner(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.WithdrawalResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.FromWithdrawal(w))
	}
	return c.JSON(out)
}
