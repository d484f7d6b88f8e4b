package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/profiles"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
)

// AdminHandler trata o back-office: fila de saques e supervisão de perfis.
type AdminHandler struct {
	wallet   *wallet.UseCase
	profiles *profiles.UseCase
}

// NewAdminHandler constrói o handler.
func NewAdminHandler(wallet *wallet.UseCase, profiles *profiles.UseCase) *AdminHandler {
	return &AdminHandler{wallet: wallet, profiles: profiles}
}

// ListWithdrawals GET /api/admin/withdrawals?status=pending&limit=20&offset=0
func (h *AdminHandler) ListWithdrawals(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.wallet.ListByStatus(c.Context(), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.WithdrawalResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.FromWithdrawal(w))
	}
	return c.JSON(out)
}

// ReviewWithdrawal PATCH /api/admin/withdrawals/:id
func (h *AdminHandler) ReviewWithdrawal(c *fiber.Ctx) error {
	var in dto.ReviewWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	w, err := h.wallet.ReviewWithdrawal(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromWithdrawal(w))
}

// ListProfiles GET /api/admin/profiles?role=partner&limit=20&offset=0
func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	list, err := h.profiles.ListByRole(c.Context(), c.Query("role"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetProfile GET /api/admin/profiles/:id
func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	resp, err := h.profiles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeactivateProfile DELETE /api/admin/profiles/:id
//
// Desativação lógica: o perfil permanece no histórico.
func (h *AdminHandler) DeactivateProfile(c *fiber.Ctx) error {
	if err := h.profiles.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
