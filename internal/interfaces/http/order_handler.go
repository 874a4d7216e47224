package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP del flujo de órdenes.
type OrderHandler struct {
	uc *order.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden (descuenta stock por línea, transaccional)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), sellerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todas las órdenes (getOrders, sin filtrar).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine devuelve las órdenes del vendedor autenticado (getOrdersBySeller).
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	out, err := h.uc.ListBySeller(c.Context(), sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus devuelve las órdenes del vendedor con el estado dado.
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	out, err := h.uc.ListByStatus(c.Context(), sellerID, c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una orden con chequeo de propiedad.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	out, err := h.uc.GetByID(c.Context(), sellerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una orden del vendedor autenticado.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), sellerID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una orden del vendedor autenticado. No restaura stock.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	ok, err := h.uc.Delete(c.Context(), sellerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: ok})
}
