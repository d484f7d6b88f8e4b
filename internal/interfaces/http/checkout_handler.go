package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/payment"
)

// CheckoutHandler trata o checkout PIX da loja (rotas públicas: o comprador
// não tem conta).
type CheckoutHandler struct {
	uc *payment.CheckoutUseCase
}

// NewCheckoutHandler constrói o handler.
func NewCheckoutHandler(uc *payment.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Create POST /api/checkout
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.CreatePixPayment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Verify GET /api/checkout/verify/:session_id
//
// A loja faz poll desta rota depois do redirect. O primeiro poll pago aloca
// os números; os seguintes devolvem o mesmo resultado.
func (h *CheckoutHandler) Verify(c *fiber.Ctx) error {
	resp, err := h.uc.VerifyPayment(c.Context(), c.Params("session_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
