package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP del directorio de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create registra un cliente para el vendedor autenticado.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.Create(sellerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve todos los clientes (sin filtrar por caller; getClients).
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine devuelve los clientes del vendedor autenticado (getClientsBySeller).
func (h *ClientHandler) ListMine(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	out, err := h.uc.ListBySeller(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un cliente con chequeo de propiedad.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	out, err := h.uc.GetByID(sellerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un cliente del vendedor autenticado.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(sellerID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un cliente del vendedor autenticado.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return unauthenticated(c)
	}
	ok, err := h.uc.Delete(sellerID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: ok})
}
