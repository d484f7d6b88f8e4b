package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
)

// SaleHandler trata consulta de vendas e o fluxo porta a porta do parceiro.
type SaleHandler struct {
	creator    *sales.CreateSaleUseCase
	doorToDoor *sales.DoorToDoorUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(creator *sales.CreateSaleUseCase, doorToDoor *sales.DoorToDoorUseCase) *SaleHandler {
	return &SaleHandler{creator: creator, doorToDoor: doorToDoor}
}

// GetByID GET /api/sales/:id (público: o comprador consulta pelo link do recibo)
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, numbers, err := h.creator.GetBySale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromSale(sale, numbers))
}

// RegisterFieldSale POST /api/partner/field-sales
//
// Venda porta a porta: números alocados na hora, pagamento fora da plataforma.
func (h *SaleHandler) RegisterFieldSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, numbers, err := h.doorToDoor.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSale(sale, numbers))
}

// PatchFieldSale PATCH /api/partner/field-sales/:id
//
// Action "settle" acerta a venda; "cancel" cancela e libera os números
// (Reason obrigatório).
func (h *SaleHandler) PatchFieldSale(c *fiber.Ctx) error {
	var in dto.PatchDoorToDoorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	actorID, actorRole := GetUserID(c), GetRole(c)
	saleID := c.Params("id")

	switch in.Action {
	case "settle":
		sale, err := h.doorToDoor.Settle(c.Context(), actorID, actorRole, saleID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.FromSale(sale, nil))
	case "cancel":
		sale, err := h.doorToDoor.Cancel(c.Context(), actorID, actorRole, saleID, in.Reason)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.FromSale(sale, nil))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "action deve ser settle ou cancel",
		})
	}
}
