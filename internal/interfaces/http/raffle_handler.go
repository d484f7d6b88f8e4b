package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/raffles"
)

// RaffleHandler trata a vitrine pública e o CRUD de rifas do admin.
type RaffleHandler struct {
	uc *raffles.UseCase
}

// NewRaffleHandler constrói o handler.
func NewRaffleHandler(uc *raffles.UseCase) *RaffleHandler {
	return &RaffleHandler{uc: uc}
}

// GetActive GET /api/raffles/active (público, vitrine da loja)
func (h *RaffleHandler) GetActive(c *fiber.Ctx) error {
	resp, err := h.uc.GetActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/raffles/:id (público)
func (h *RaffleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Create POST /api/admin/raffles
func (h *RaffleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRaffleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/admin/raffles/:id
func (h *RaffleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRaffleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/admin/raffles?limit=20&offset=0
func (h *RaffleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AddWinningNumber POST /api/admin/raffles/:id/winning-numbers
func (h *RaffleHandler) AddWinningNumber(c *fiber.Ctx) error {
	var in dto.WinningNumberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.AddWinningNumber(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListWinningNumbers GET /api/admin/raffles/:id/winning-numbers
func (h *RaffleHandler) ListWinningNumbers(c *fiber.Ctx) error {
	resp, err := h.uc.ListWinningNumbers(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Draw POST /api/admin/raffles/:id/draw
func (h *RaffleHandler) Draw(c *fiber.Ctx) error {
	resp, err := h.uc.Draw(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Cancel POST /api/admin/raffles/:id/cancel
func (h *RaffleHandler) Cancel(c *fiber.Ctx) error {
	resp, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
