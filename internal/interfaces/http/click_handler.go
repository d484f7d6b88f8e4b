package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/partner"
)

// ClickHandler registra visitas ao link de afiliado (rota pública).
type ClickHandler struct {
	uc *partner.UseCase
}

// NewClickHandler constrói o handler.
func NewClickHandler(uc *partner.UseCase) *ClickHandler {
	return &ClickHandler{uc: uc}
}

// Track POST /api/clicks
//
// Referrer e User-Agent vêm dos headers quando o corpo não informar.
func (h *ClickHandler) Track(c *fiber.Ctx) error {
	var in dto.TrackClickRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Referrer == "" {
		in.Referrer = c.Get(fiber.HeaderReferer)
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Get(fiber.HeaderUserAgent)
	}
	click, err := h.uc.TrackClick(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.FromClick(click)
	return c.Status(fiber.StatusCreated).JSON(resp)
}
